package favorite

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/favorite/domain"
	"github.com/tair/feedback-service/internal/favorite/repository"
	"github.com/tair/feedback-service/internal/favorite/usecase/command"
	"github.com/tair/feedback-service/internal/favorite/usecase/query"
)

// ProvideFavoriteRepository provides the traced favorite repository
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewTracingFavoriteRepository(repository.NewGormFavoriteRepository(db))
}

// Command Handlers Providers
func ProvideAddFavoriteHandler(repo domain.FavoriteRepository, events command.EventPublisher) *command.AddFavoriteHandler {
	return command.NewAddFavoriteHandler(repo, events)
}

func ProvideRemoveFavoriteHandler(repo domain.FavoriteRepository, events command.EventPublisher) *command.RemoveFavoriteHandler {
	return command.NewRemoveFavoriteHandler(repo, events)
}

func ProvidePurgeFavoritesHandler(repo domain.FavoriteRepository) *command.PurgeFavoritesHandler {
	return command.NewPurgeFavoritesHandler(repo)
}

// Query Handlers Providers
func ProvideIsFavoriteHandler(repo domain.FavoriteRepository) *query.IsFavoriteHandler {
	return query.NewIsFavoriteHandler(repo)
}

func ProvideListUserFavoritesHandler(repo domain.FavoriteRepository) *query.ListUserFavoritesHandler {
	return query.NewListUserFavoritesHandler(repo)
}

func ProvideListProductFavoritesHandler(repo domain.FavoriteRepository) *query.ListProductFavoritesHandler {
	return query.NewListProductFavoritesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFavoriteRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddFavoriteHandler,
	ProvideRemoveFavoriteHandler,
	ProvidePurgeFavoritesHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideIsFavoriteHandler,
	ProvideListUserFavoritesHandler,
	ProvideListProductFavoritesHandler,
)
