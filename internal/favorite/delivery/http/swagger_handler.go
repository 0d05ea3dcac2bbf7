package http

// AddFavorite godoc
// @Summary Add a product to the caller's favorites
// @Description Idempotent: favoriting an already favorited product returns the existing favorite with 200
// @Tags Favorites
// @Produce json
// @Param X-User-Id header int true "Caller user ID (set by the gateway)"
// @Param id path int true "Product ID"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/{id}/favorite [post]
func (h *FavoriteHandler) AddFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Remove a product from the caller's favorites
// @Tags Favorites
// @Produce json
// @Param X-User-Id header int true "Caller user ID (set by the gateway)"
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/{id}/favorite [delete]
func (h *FavoriteHandler) RemoveFavoriteDoc() {}

// IsFavorite godoc
// @Summary Check whether the caller favorited a product
// @Tags Favorites
// @Produce json
// @Param X-User-Id header int true "Caller user ID (set by the gateway)"
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object{product_id=int,favorite=bool}}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/{id}/favorite [get]
func (h *FavoriteHandler) IsFavoriteDoc() {}

// ListProductFavorites godoc
// @Summary List favorites of a product
// @Tags Favorites
// @Produce json
// @Param id path int true "Product ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{favorites=array,total=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/{id}/favorites [get]
func (h *FavoriteHandler) ListProductFavoritesDoc() {}

// ListUserFavorites godoc
// @Summary List favorites of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} object{success=bool,data=object{favorites=array}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/users/{id}/favorites [get]
func (h *FavoriteHandler) ListUserFavoritesDoc() {}
