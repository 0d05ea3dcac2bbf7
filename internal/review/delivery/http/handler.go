package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/internal/review/usecase/command"
	"github.com/tair/feedback-service/internal/review/usecase/query"
	"github.com/tair/feedback-service/pkg/logger"
	"github.com/tair/feedback-service/pkg/middleware"
)

// ReviewHandler handles HTTP requests for reviews using CQRS pattern
type ReviewHandler struct {
	// Command handlers
	createHandler *command.CreateReviewHandler
	updateHandler *command.UpdateReviewHandler
	deleteHandler *command.DeleteReviewHandler

	// Query handlers
	getHandler           *query.GetReviewHandler
	listByProductHandler *query.ListProductReviewsHandler
	listByUserHandler    *query.ListUserReviewsHandler
	summaryHandler       *query.GetRatingSummaryHandler

	metrics *middleware.HTTPMetrics
}

// NewReviewHandler creates a new review handler from a repository
func NewReviewHandler(repo domain.ReviewRepository, events command.EventPublisher, reg prometheus.Registerer) *ReviewHandler {
	return NewReviewHandlerWithDI(
		command.NewCreateReviewHandler(repo, events),
		command.NewUpdateReviewHandler(repo, events),
		command.NewDeleteReviewHandler(repo, events),
		query.NewGetReviewHandler(repo),
		query.NewListProductReviewsHandler(repo),
		query.NewListUserReviewsHandler(repo),
		query.NewGetRatingSummaryHandler(repo),
		reg,
	)
}

// NewReviewHandlerWithDI creates a new review handler using dependency injection
func NewReviewHandlerWithDI(
	createHandler *command.CreateReviewHandler,
	updateHandler *command.UpdateReviewHandler,
	deleteHandler *command.DeleteReviewHandler,
	getHandler *query.GetReviewHandler,
	listByProductHandler *query.ListProductReviewsHandler,
	listByUserHandler *query.ListUserReviewsHandler,
	summaryHandler *query.GetRatingSummaryHandler,
	reg prometheus.Registerer,
) *ReviewHandler {
	return &ReviewHandler{
		createHandler:        createHandler,
		updateHandler:        updateHandler,
		deleteHandler:        deleteHandler,
		getHandler:           getHandler,
		listByProductHandler: listByProductHandler,
		listByUserHandler:    listByUserHandler,
		summaryHandler:       summaryHandler,
		metrics:              middleware.NewHTTPMetrics(reg, "review_service"),
	}
}

// RegisterRoutes registers review routes on router
func (h *ReviewHandler) RegisterRoutes(router *mux.Router) {
	m := h.metrics
	router.HandleFunc("/api/products/{id}/reviews", m.Wrap("/api/products/{id}/reviews", h.ListProductReviews)).Methods("GET")
	router.HandleFunc("/api/products/{id}/reviews/summary", m.Wrap("/api/products/{id}/reviews/summary", h.GetRatingSummary)).Methods("GET")
	router.HandleFunc("/api/users/{id}/reviews", m.Wrap("/api/users/{id}/reviews", h.ListUserReviews)).Methods("GET")
	router.HandleFunc("/api/reviews/{id}", m.Wrap("/api/reviews/{id}", h.GetReview)).Methods("GET")

	// Caller routes (X-User-Id required)
	router.HandleFunc("/api/products/{id}/reviews", m.Wrap("/api/products/{id}/reviews", middleware.RequireCaller(h.CreateReview))).Methods("POST")
	router.HandleFunc("/api/reviews/{id}", m.Wrap("/api/reviews/{id}", middleware.RequireCaller(h.UpdateReview))).Methods("PUT")
	router.HandleFunc("/api/reviews/{id}", m.Wrap("/api/reviews/{id}", middleware.RequireCaller(h.DeleteReview))).Methods("DELETE")
}

// CreateReview handles POST /api/products/{id}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req struct {
		Body   string `json:"body"`
		Rating int    `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.createHandler.Handle(r.Context(), command.CreateReviewCommand{
		UserID:    userID,
		ProductID: productID,
		Body:      req.Body,
		Rating:    req.Rating,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to create review")
		return
	}

	middleware.RespondJSON(w, http.StatusCreated, middleware.Response{
		Success: true,
		Message: "Review created successfully",
		Data:    review,
	})
}

// UpdateReview handles PUT /api/reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid review ID")
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req struct {
		Body   *string `json:"body"`
		Rating *int    `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.updateHandler.Handle(r.Context(), command.UpdateReviewCommand{
		ID:      id,
		ActorID: userID,
		Body:    req.Body,
		Rating:  req.Rating,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to update review")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Message: "Review updated successfully",
		Data:    review,
	})
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid review ID")
	if !ok {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteReviewCommand{ID: id, ActorID: userID}); err != nil {
		respondFailure(w, r, err, "Failed to delete review")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Message: "Review deleted successfully",
	})
}

// GetReview handles GET /api/reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Invalid review ID")
	if !ok {
		return
	}

	review, err := h.getHandler.Handle(r.Context(), query.GetReviewQuery{ID: id})
	if err != nil {
		respondFailure(w, r, err, "Failed to get review")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Data:    review,
	})
}

// ListProductReviews handles GET /api/products/{id}/reviews
func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}
	limit, offset := pagination(r)

	page, err := h.listByProductHandler.Handle(r.Context(), query.ListProductReviewsQuery{
		ProductID: productID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to list reviews")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Data: map[string]interface{}{
			"reviews": page.Reviews,
			"total":   page.Total,
			"limit":   limit,
			"offset":  offset,
		},
	})
}

// ListUserReviews handles GET /api/users/{id}/reviews
func (h *ReviewHandler) ListUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "Invalid user ID")
	if !ok {
		return
	}
	limit, offset := pagination(r)

	reviews, err := h.listByUserHandler.Handle(r.Context(), query.ListUserReviewsQuery{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondFailure(w, r, err, "Failed to list reviews")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Data: map[string]interface{}{
			"reviews": reviews,
			"limit":   limit,
			"offset":  offset,
		},
	})
}

// GetRatingSummary handles GET /api/products/{id}/reviews/summary
func (h *ReviewHandler) GetRatingSummary(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	summary, err := h.summaryHandler.Handle(r.Context(), query.GetRatingSummaryQuery{ProductID: productID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to get rating summary")
		middleware.RespondError(w, http.StatusInternalServerError, "Failed to get rating summary")
		return
	}

	middleware.RespondJSON(w, http.StatusOK, middleware.Response{
		Success: true,
		Data:    summary,
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
	case errors.Is(err, domain.ErrReviewNotFound):
		middleware.RespondError(w, http.StatusNotFound, "Review not found")
	case errors.Is(err, domain.ErrUnknownReference):
		middleware.RespondError(w, http.StatusNotFound, "User or product not found")
	case errors.Is(err, domain.ErrNotAuthor):
		middleware.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidRating), errors.Is(err, domain.ErrEmptyBody):
		middleware.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		middleware.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAuthorNotFound):
		logger.Error(r.Context()).Err(err).Msg(message)
		middleware.RespondError(w, http.StatusInternalServerError, "Review author not found")
	default:
		logger.Error(r.Context()).Err(err).Msg(message)
		middleware.RespondError(w, http.StatusInternalServerError, message)
	}
}
