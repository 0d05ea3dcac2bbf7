package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tair/feedback-service/internal/favorite/repository"
	"github.com/tair/feedback-service/internal/favorite/usecase/query"
	"github.com/tair/feedback-service/internal/testutil"
	"github.com/tair/feedback-service/pkg/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	return newRouterWithDB(t, testutil.NewDB(t))
}

func newRouterWithDB(t *testing.T, db *gorm.DB) *mux.Router {
	t.Helper()
	repo := repository.NewGormFavoriteRepository(db)
	h := NewFavoriteHandler(repo, nil, prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(middleware.CallerMiddleware)
	h.RegisterRoutes(router)
	return router
}

func do(t *testing.T, router http.Handler, method, path string, caller uint) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if caller != 0 {
		req.Header.Set(middleware.UserIDHeader, strconv.FormatUint(uint64(caller), 10))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestFavoriteLifecycle(t *testing.T) {
	router := newRouter(t)

	code, body := do(t, router, http.MethodPost, "/api/products/10/favorite", testutil.AliceID)
	require.Equal(t, http.StatusCreated, code, body.Error)
	assert.True(t, body.Success)

	var fav struct {
		ID        uint `json:"id"`
		UserID    uint `json:"user_id"`
		ProductID uint `json:"product_id"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &fav))
	assert.Equal(t, testutil.AliceID, fav.UserID)
	assert.Equal(t, testutil.LampID, fav.ProductID)

	code, _ = do(t, router, http.MethodPost, "/api/products/10/favorite", testutil.AliceID)
	assert.Equal(t, http.StatusOK, code, "repeat add is idempotent")

	code, body = do(t, router, http.MethodGet, "/api/products/10/favorite", testutil.AliceID)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"product_id":10,"favorite":true}`, string(body.Data))

	code, body = do(t, router, http.MethodGet, "/api/products/10/favorites", 0)
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Favorites []json.RawMessage `json:"favorites"`
		Total     int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Favorites, 1)

	code, _ = do(t, router, http.MethodDelete, "/api/products/10/favorite", testutil.AliceID)
	assert.Equal(t, http.StatusOK, code)

	code, body = do(t, router, http.MethodDelete, "/api/products/10/favorite", testutil.AliceID)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Success)
}

func TestListUserFavorites(t *testing.T) {
	router := newRouter(t)
	for _, path := range []string{"/api/products/10/favorite", "/api/products/11/favorite"} {
		code, _ := do(t, router, http.MethodPost, path, testutil.BobID)
		require.Equal(t, http.StatusCreated, code)
	}

	code, body := do(t, router, http.MethodGet, "/api/users/2/favorites?limit=1", 0)
	require.Equal(t, http.StatusOK, code)

	var page struct {
		Favorites []struct {
			ProductID uint `json:"product_id"`
		} `json:"favorites"`
		Limit int `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Equal(t, 1, page.Limit)
	require.Len(t, page.Favorites, 1)
	assert.Equal(t, testutil.KettleID, page.Favorites[0].ProductID, "newest first")
}

func TestFavoriteErrors(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		caller uint
		want   int
	}{
		{"missing caller", http.MethodPost, "/api/products/10/favorite", 0, http.StatusUnauthorized},
		{"bad product id", http.MethodPost, "/api/products/abc/favorite", testutil.AliceID, http.StatusBadRequest},
		{"zero product id", http.MethodGet, "/api/products/0/favorites", 0, http.StatusBadRequest},
		{"unknown product", http.MethodPost, "/api/products/999/favorite", testutil.AliceID, http.StatusNotFound},
		{"unknown caller", http.MethodPost, "/api/products/10/favorite", 999, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, router, tt.method, tt.path, tt.caller)
			assert.Equal(t, tt.want, code)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestStorageFailureIsServerError(t *testing.T) {
	db := testutil.NewDB(t)
	router := newRouterWithDB(t, db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	tests := []struct {
		name    string
		method  string
		path    string
		message string
	}{
		{"add", http.MethodPost, "/api/products/10/favorite", "Failed to add favorite"},
		{"list by product", http.MethodGet, "/api/products/10/favorites", "Failed to list favorites"},
		{"list by user", http.MethodGet, "/api/users/1/favorites", "Failed to list favorites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, router, tt.method, tt.path, testutil.AliceID)
			assert.Equal(t, http.StatusInternalServerError, code)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestListFavoritesCapsLimit(t *testing.T) {
	router := newRouter(t)

	code, body := do(t, router, http.MethodGet, "/api/users/1/favorites?limit=999999999", 0)
	require.Equal(t, http.StatusOK, code, body.Error)

	var page struct {
		Limit int `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Equal(t, query.MaxLimit, page.Limit)
}
