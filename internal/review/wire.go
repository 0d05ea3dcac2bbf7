//go:build wireinject
// +build wireinject

package review

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	favoritequery "github.com/tair/feedback-service/internal/favorite/usecase/query"
	"github.com/tair/feedback-service/internal/review/delivery/grpc"
	"github.com/tair/feedback-service/internal/review/delivery/http"
	"github.com/tair/feedback-service/internal/review/usecase/command"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, events command.EventPublisher, reg prometheus.Registerer) (*http.ReviewHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewReviewHandlerWithDI,
	)
	return nil, nil
}

// InitializeGRPCServer initializes gRPC server with all dependencies
func InitializeGRPCServer(db *gorm.DB, favorites *favoritequery.ListUserFavoritesHandler) (*grpc.FeedbackServer, error) {
	wire.Build(
		RepositorySet,
		QueryHandlerSet,
		grpc.NewFeedbackServer,
	)
	return nil, nil
}

// InitializePurgeHandler initializes the purge command used by event cleanup
func InitializePurgeHandler(db *gorm.DB) *command.PurgeReviewsHandler {
	wire.Build(
		RepositorySet,
		ProvidePurgeReviewsHandler,
	)
	return nil
}
