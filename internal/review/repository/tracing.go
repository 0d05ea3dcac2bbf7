package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/feedback-service/internal/review/domain"
)

var tracer = otel.Tracer("review-repository")

// TracingReviewRepository wraps a ReviewRepository with tracing
type TracingReviewRepository struct {
	next domain.ReviewRepository
}

// NewTracingReviewRepository creates a new repository with tracing
func NewTracingReviewRepository(next domain.ReviewRepository) *TracingReviewRepository {
	return &TracingReviewRepository{next: next}
}

// Create with tracing
func (r *TracingReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("review.user_id", int(review.UserID)),
			attribute.Int("review.product_id", int(review.ProductID)),
			attribute.Int("review.rating", review.Rating),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, review); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("review.id", int(review.ID)))
	return nil
}

// FindByID with tracing
func (r *TracingReviewRepository) FindByID(ctx context.Context, id uint) (*domain.Review, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("review.id", int(id))),
	)
	defer span.End()

	review, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return review, nil
}

// Update with tracing
func (r *TracingReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("review.id", int(review.ID)),
			attribute.Int("review.rating", review.Rating),
		),
	)
	defer span.End()

	if err := r.next.Update(ctx, review); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// Delete with tracing
func (r *TracingReviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("review.id", int(id))),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// DeleteByUser with tracing
func (r *TracingReviewRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.DeleteByUser",
		trace.WithAttributes(attribute.Int("review.user_id", int(userID))),
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

// DeleteByProduct with tracing
func (r *TracingReviewRepository) DeleteByProduct(ctx context.Context, productID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.DeleteByProduct",
		trace.WithAttributes(attribute.Int("review.product_id", int(productID))),
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

// FindViewByID with tracing
func (r *TracingReviewRepository) FindViewByID(ctx context.Context, id uint) (*domain.ReviewView, error) {
	ctx, span := tracer.Start(ctx, "repository.FindViewByID",
		trace.WithAttributes(attribute.Int("review.id", int(id))),
	)
	defer span.End()

	view, err := r.next.FindViewByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("review.username", view.Username))
	return view, nil
}

// FindViewsByProduct with tracing
func (r *TracingReviewRepository) FindViewsByProduct(ctx context.Context, productID uint, limit, offset int) ([]domain.ReviewView, error) {
	ctx, span := tracer.Start(ctx, "repository.FindViewsByProduct",
		trace.WithAttributes(
			attribute.Int("review.product_id", int(productID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	views, err := r.next.FindViewsByProduct(ctx, productID, limit, offset)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(views)))
	return views, nil
}

// FindViewsByUser with tracing
func (r *TracingReviewRepository) FindViewsByUser(ctx context.Context, userID uint, limit, offset int) ([]domain.ReviewView, error) {
	ctx, span := tracer.Start(ctx, "repository.FindViewsByUser",
		trace.WithAttributes(
			attribute.Int("review.user_id", int(userID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	views, err := r.next.FindViewsByUser(ctx, userID, limit, offset)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(views)))
	return views, nil
}

// CountByProduct with tracing
func (r *TracingReviewRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountByProduct",
		trace.WithAttributes(attribute.Int("review.product_id", int(productID))),
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

// SummarizeByProduct with tracing
func (r *TracingReviewRepository) SummarizeByProduct(ctx context.Context, productID uint) (*domain.RatingSummary, error) {
	ctx, span := tracer.Start(ctx, "repository.SummarizeByProduct",
		trace.WithAttributes(attribute.Int("review.product_id", int(productID))),
	)
	defer span.End()

	summary, err := r.next.SummarizeByProduct(ctx, productID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("result.count", summary.TotalCount),
		attribute.Float64("result.average_rating", summary.AverageRating),
	)
	return summary, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
