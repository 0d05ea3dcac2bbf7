package grpc

import (
	"context"
	"errors"
	"math"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	favoritequery "github.com/tair/feedback-service/internal/favorite/usecase/query"
	"github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/internal/review/usecase/query"
)

// FeedbackServer implements the gRPC FeedbackService
type FeedbackServer struct {
	getReviewHandler          *query.GetReviewHandler
	listProductReviewsHandler *query.ListProductReviewsHandler
	listUserFavoritesHandler  *favoritequery.ListUserFavoritesHandler
}

// NewFeedbackServer creates a new gRPC feedback server
func NewFeedbackServer(
	getReviewHandler *query.GetReviewHandler,
	listProductReviewsHandler *query.ListProductReviewsHandler,
	listUserFavoritesHandler *favoritequery.ListUserFavoritesHandler,
) *FeedbackServer {
	return &FeedbackServer{
		getReviewHandler:          getReviewHandler,
		listProductReviewsHandler: listProductReviewsHandler,
		listUserFavoritesHandler:  listUserFavoritesHandler,
	}
}

// GetReview returns a review with its author's username
func (s *FeedbackServer) GetReview(ctx context.Context, req *wrapperspb.UInt64Value) (*structpb.Struct, error) {
	id, err := requestID(req)
	if err != nil {
		return nil, err
	}

	view, err := s.getReviewHandler.Handle(ctx, query.GetReviewQuery{ID: id})
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := toStruct(view.ToMap())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode review: %v", err)
	}
	return out, nil
}

// ListProductReviews returns the newest reviews of a product and its total
func (s *FeedbackServer) ListProductReviews(ctx context.Context, req *wrapperspb.UInt64Value) (*structpb.Struct, error) {
	productID, err := requestID(req)
	if err != nil {
		return nil, err
	}

	page, err := s.listProductReviewsHandler.Handle(ctx, query.ListProductReviewsQuery{ProductID: productID})
	if err != nil {
		return nil, toStatus(err)
	}

	reviews := make([]interface{}, 0, len(page.Reviews))
	for _, view := range page.Reviews {
		reviews = append(reviews, plain(view.ToMap()))
	}
	out, err := structpb.NewStruct(map[string]interface{}{
		"reviews": reviews,
		"total":   page.Total,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode reviews: %v", err)
	}
	return out, nil
}

// ListUserFavorites returns the newest favorites of a user
func (s *FeedbackServer) ListUserFavorites(ctx context.Context, req *wrapperspb.UInt64Value) (*structpb.ListValue, error) {
	userID, err := requestID(req)
	if err != nil {
		return nil, err
	}

	favorites, err := s.listUserFavoritesHandler.Handle(ctx, favoritequery.ListUserFavoritesQuery{UserID: userID})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list favorites: %v", err)
	}

	items := make([]interface{}, 0, len(favorites))
	for i := range favorites {
		items = append(items, plain(favorites[i].ToMap()))
	}
	out, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode favorites: %v", err)
	}
	return out, nil
}

func requestID(req *wrapperspb.UInt64Value) (uint, error) {
	if req.GetValue() == 0 || req.GetValue() > math.MaxUint32 {
		return 0, status.Error(codes.InvalidArgument, "id must be a positive 32-bit integer")
	}
	return uint(req.GetValue()), nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrReviewNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrAuthorNotFound):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// plain rewrites values structpb cannot hold. Timestamps become RFC 3339 strings.
func plain(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if t, ok := v.(time.Time); ok {
			v = t.UTC().Format(time.RFC3339Nano)
		}
		out[k] = v
	}
	return out
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	return structpb.NewStruct(plain(m))
}
