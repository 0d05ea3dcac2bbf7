package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/feedback-service/internal/favorite/domain"
)

var tracer = otel.Tracer("favorite-repository")

// TracingFavoriteRepository wraps a FavoriteRepository with tracing
type TracingFavoriteRepository struct {
	next domain.FavoriteRepository
}

// NewTracingFavoriteRepository creates a new repository with tracing
func NewTracingFavoriteRepository(next domain.FavoriteRepository) *TracingFavoriteRepository {
	return &TracingFavoriteRepository{next: next}
}

func (r *TracingFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("favorite.user_id", int(favorite.UserID)),
			attribute.Int("favorite.product_id", int(favorite.ProductID)),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, favorite); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("favorite.id", int(favorite.ID)))
	return nil
}

func (r *TracingFavoriteRepository) FindByID(ctx context.Context, id uint) (*domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("favorite.id", int(id))),
	)
	defer span.End()

	favorite, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return favorite, nil
}

func (r *TracingFavoriteRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUserAndProduct",
		trace.WithAttributes(
			attribute.Int("favorite.user_id", int(userID)),
			attribute.Int("favorite.product_id", int(productID)),
		),
	)
	defer span.End()

	favorite, err := r.next.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return favorite, nil
}

func (r *TracingFavoriteRepository) FindByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUser",
		trace.WithAttributes(
			attribute.Int("favorite.user_id", int(userID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	favorites, err := r.next.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(favorites)))
	return favorites, nil
}

func (r *TracingFavoriteRepository) FindByProduct(ctx context.Context, productID uint, limit, offset int) ([]domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByProduct",
		trace.WithAttributes(
			attribute.Int("favorite.product_id", int(productID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	favorites, err := r.next.FindByProduct(ctx, productID, limit, offset)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(favorites)))
	return favorites, nil
}

func (r *TracingFavoriteRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountByProduct",
		trace.WithAttributes(attribute.Int("favorite.product_id", int(productID))),
	)
	defer span.End()

	count, err := r.next.CountByProduct(ctx, productID)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func (r *TracingFavoriteRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("favorite.id", int(id))),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingFavoriteRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.DeleteByUser",
		trace.WithAttributes(attribute.Int("favorite.user_id", int(userID))),
	)
	defer span.End()

	n, err := r.next.DeleteByUser(ctx, userID)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.deleted", n))
	return n, nil
}

func (r *TracingFavoriteRepository) DeleteByProduct(ctx context.Context, productID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.DeleteByProduct",
		trace.WithAttributes(attribute.Int("favorite.product_id", int(productID))),
	)
	defer span.End()

	n, err := r.next.DeleteByProduct(ctx, productID)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.deleted", n))
	return n, nil
}

// recordError adds database error details to span
func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
