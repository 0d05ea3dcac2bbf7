package review

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/internal/review/repository"
	"github.com/tair/feedback-service/internal/review/usecase/command"
	"github.com/tair/feedback-service/internal/review/usecase/query"
)

// ProvideReviewRepository provides the traced review repository
func ProvideReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return repository.NewTracingReviewRepository(repository.NewGormReviewRepository(db))
}

// Command Handlers Providers
func ProvideCreateReviewHandler(repo domain.ReviewRepository, events command.EventPublisher) *command.CreateReviewHandler {
	return command.NewCreateReviewHandler(repo, events)
}

func ProvideUpdateReviewHandler(repo domain.ReviewRepository, events command.EventPublisher) *command.UpdateReviewHandler {
	return command.NewUpdateReviewHandler(repo, events)
}

func ProvideDeleteReviewHandler(repo domain.ReviewRepository, events command.EventPublisher) *command.DeleteReviewHandler {
	return command.NewDeleteReviewHandler(repo, events)
}

func ProvidePurgeReviewsHandler(repo domain.ReviewRepository) *command.PurgeReviewsHandler {
	return command.NewPurgeReviewsHandler(repo)
}

// Query Handlers Providers
func ProvideGetReviewHandler(repo domain.ReviewRepository) *query.GetReviewHandler {
	return query.NewGetReviewHandler(repo)
}

func ProvideListProductReviewsHandler(repo domain.ReviewRepository) *query.ListProductReviewsHandler {
	return query.NewListProductReviewsHandler(repo)
}

func ProvideListUserReviewsHandler(repo domain.ReviewRepository) *query.ListUserReviewsHandler {
	return query.NewListUserReviewsHandler(repo)
}

func ProvideGetRatingSummaryHandler(repo domain.ReviewRepository) *query.GetRatingSummaryHandler {
	return query.NewGetRatingSummaryHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReviewRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateReviewHandler,
	ProvideUpdateReviewHandler,
	ProvideDeleteReviewHandler,
	ProvidePurgeReviewsHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetReviewHandler,
	ProvideListProductReviewsHandler,
	ProvideListUserReviewsHandler,
	ProvideGetRatingSummaryHandler,
)
