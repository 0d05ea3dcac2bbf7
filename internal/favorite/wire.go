//go:build wireinject
// +build wireinject

package favorite

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/favorite/delivery/http"
	"github.com/tair/feedback-service/internal/favorite/usecase/command"
	"github.com/tair/feedback-service/internal/favorite/usecase/query"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, events command.EventPublisher, reg prometheus.Registerer) (*http.FavoriteHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewFavoriteHandlerWithDI,
	)
	return nil, nil
}

// InitializePurgeHandler initializes the purge command used by event cleanup
func InitializePurgeHandler(db *gorm.DB) *command.PurgeFavoritesHandler {
	wire.Build(
		RepositorySet,
		ProvidePurgeFavoritesHandler,
	)
	return nil
}

// InitializeListUserFavoritesHandler initializes the query served over gRPC
func InitializeListUserFavoritesHandler(db *gorm.DB) *query.ListUserFavoritesHandler {
	wire.Build(
		RepositorySet,
		ProvideListUserFavoritesHandler,
	)
	return nil
}
