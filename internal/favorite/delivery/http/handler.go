package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/feedback-service/internal/favorite/domain"
	"github.com/tair/feedback-service/internal/favorite/usecase/command"
	"github.com/tair/feedback-service/internal/favorite/usecase/query"
	"github.com/tair/feedback-service/pkg/logger"
	"github.com/tair/feedback-service/pkg/middleware"
)

// FavoriteHandler handles HTTP requests for favorites using CQRS pattern
type FavoriteHandler struct {
	// Command handlers
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler

	// Query handlers
	isFavoriteHandler    *query.IsFavoriteHandler
	listByUserHandler    *query.ListUserFavoritesHandler
	listByProductHandler *query.ListProductFavoritesHandler

	metrics *middleware.HTTPMetrics
}

// NewFavoriteHandler creates a new favorite handler from a repository
func NewFavoriteHandler(repo domain.FavoriteRepository, events command.EventPublisher, reg prometheus.Registerer) *FavoriteHandler {
	return NewFavoriteHandlerWithDI(
		command.NewAddFavoriteHandler(repo, events),
		command.NewRemoveFavoriteHandler(repo, events),
		query.NewIsFavoriteHandler(repo),
		query.NewListUserFavoritesHandler(repo),
		query.NewListProductFavoritesHandler(repo),
		reg,
	)
}

// NewFavoriteHandlerWithDI creates a new favorite handler using dependency injection
func NewFavoriteHandlerWithDI(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	isFavoriteHandler *query.IsFavoriteHandler,
	listByUserHandler *query.ListUserFavoritesHandler,
	listByProductHandler *query.ListProductFavoritesHandler,
	reg prometheus.Registerer,
) *FavoriteHandler {
	return &FavoriteHandler{
		addHandler:           addHandler,
		removeHandler:        removeHandler,
		isFavoriteHandler:    isFavoriteHandler,
		listByUserHandler:    listByUserHandler,
		listByProductHandler: listByProductHandler,
		metrics:              middleware.NewHTTPMetrics(reg, "favorite_service"),
	}
}

// RegisterRoutes registers favorite routes on router
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	m := h.metrics
	router.HandleFunc("/api/products/{id}/favorites", m.Wrap("/api/products/{id}/favorites", h.ListProductFavorites)).Methods("GET")
	router.HandleFunc("/api/users/{id}/favorites", m.Wrap("/api/users/{id}/favorites", h.ListUserFavorites)).Methods("GET")

	// Caller routes (X-User-Id required)
	router.HandleFunc("/api/products/{id}/favorite", m.Wrap("/api/products/{id}/favorite", middleware.RequireCaller(h.IsFavorite))).Methods("GET")
	router.HandleFunc("/api/products/{id}/favorite", m.Wrap("/api/products/{id}/favorite", middleware.RequireCaller(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/api/products/{id}/favorite", m.Wrap("/api/products/{id}/favorite", middleware.RequireCaller(h.RemoveFavorite))).Methods("DELETE")
}

// AddFavorite handles POST /api/products/{id}/favorite
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	favorite, created, err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to add favorite")
		return
	}

	if !created {
		middleware.RespondJSON(w, http.StatusOK, middleware.Response{
			Success: true,
			Message: "Product already in favorites",
			Data:    favorite,
		})
		return
	}

	middleware.RespondJSON(w, http.StatusCreated, middleware.Response{
		Success: true,
		Message: "Favorite added successfully",
		Data:    favorite,
	})
}

// RemoveFavorite handles DELETE /api/products/{id}/favorite
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to remove favorite")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Message: "Favorite removed successfully",
	})
}

// IsFavorite handles GET /api/products/{id}/favorite
func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	favorited, err := h.isFavoriteHandler.Handle(r.Context(), query.IsFavoriteQuery{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to check favorite")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Data:    map[string]interface{}{"product_id": productID, "favorite": favorited},
	})
}

// ListProductFavorites handles GET /api/products/{id}/favorites
func (h *FavoriteHandler) ListProductFavorites(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}
	limit, offset := pagination(r)

	page, err := h.listByProductHandler.Handle(r.Context(), query.ListProductFavoritesQuery{
		ProductID: productID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to list favorites")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Data: map[string]interface{}{
			"favorites": page.Favorites,
			"total":     page.Total,
			"limit":     limit,
			"offset":    offset,
		},
	})
}

// ListUserFavorites handles GET /api/users/{id}/favorites
func (h *FavoriteHandler) ListUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "Invalid user ID")
	if !ok {
		return
	}
	limit, offset := pagination(r)

	favorites, err := h.listByUserHandler.Handle(r.Context(), query.ListUserFavoritesQuery{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to list favorites")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Data: map[string]interface{}{
			"favorites": favorites,
			"limit":     limit,
			"offset":    offset,
		},
	})
}

func pathID(w http.ResponseWriter, r *http.Request, message string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		middleware.RespondError(w, http.StatusBadRequest, message)
		return 0, false
	}
	return uint(id), true
}

func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	limit = query.PageLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// respondFailure maps domain errors onto HTTP statuses
func respondFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrFavoriteNotFound):
		middleware.RespondError(w, http.StatusNotFound, "Favorite not found")
	case errors.Is(err, domain.ErrUnknownReference):
		middleware.RespondError(w, http.StatusNotFound, "User or product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		middleware.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error(r.Context()).Err(err).Msg(message)
		middleware.RespondError(w, http.StatusInternalServerError, message)
	}
}
