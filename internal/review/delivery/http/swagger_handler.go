package http

// CreateReview godoc
// @Summary Review a product
// @Description Create a review authored by the caller. Rating must be 1 to 5.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Caller user ID (set by the gateway)"
// @Param id path int true "Product ID"
// @Param request body object{body=string,rating=int} true "Review data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 422 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/{id}/reviews [post]
func (h *ReviewHandler) CreateReviewDoc() {}

// UpdateReview godoc
// @Summary Edit a review
// @Description Update body and/or rating. Only the author may edit.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param X-User-Id header int true "Caller user ID (set by the gateway)"
// @Param id path int true "Review ID"
// @Param request body object{body=string,rating=int} true "Fields to change"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 422 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) UpdateReviewDoc() {}

// DeleteReview godoc
// @Summary Delete a review
// @Description Only the author may delete.
// @Tags Reviews
// @Produce json
// @Param X-User-Id header int true "Caller user ID (set by the gateway)"
// @Param id path int true "Review ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReviewDoc() {}

// GetReview godoc
// @Summary Get review by ID
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} object{success=bool,data=object{id=int,user_id=int,username=string,product_id=int,body=string,rating=int,created_at=string,updated_at=string}}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/reviews/{id} [get]
func (h *ReviewHandler) GetReviewDoc() {}

// ListProductReviews godoc
// @Summary List reviews of a product
// @Tags Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{reviews=array,total=int}}
// @Router /api/products/{id}/reviews [get]
func (h *ReviewHandler) ListProductReviewsDoc() {}

// ListUserReviews godoc
// @Summary List reviews written by a user
// @Tags Reviews
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{reviews=array}}
// @Router /api/users/{id}/reviews [get]
func (h *ReviewHandler) ListUserReviewsDoc() {}

// GetRatingSummary godoc
// @Summary Rating summary of a product
// @Tags Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object{product_id=int,average_rating=number,total_count=int}}
// @Router /api/products/{id}/reviews/summary [get]
func (h *ReviewHandler) GetRatingSummaryDoc() {}
