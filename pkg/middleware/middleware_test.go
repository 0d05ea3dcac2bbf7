package middleware

import (
	"bytes"
	"io"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/feedback-service/pkg/logger"
)

func TestCallerMiddleware(t *testing.T) {
	var got uint
	var ok bool
	h := CallerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = UserIDFromContext(r.Context())
	}))

	tests := []struct {
		header string
		want   uint
		wantOK bool
	}{
		{"7", 7, true},
		{"", 0, false},
		{"abc", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
	}
	for _, tt := range tests {
		got, ok = 0, false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			req.Header.Set(UserIDHeader, tt.header)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, tt.wantOK, ok, "header %q", tt.header)
		assert.Equal(t, tt.want, got, "header %q", tt.header)
	}
}

func TestRequireCaller(t *testing.T) {
	called := false
	h := CallerMiddleware(RequireCaller(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(UserIDHeader, "1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}

func TestHTTPMetrics_Wrap(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg, "test_service")

	h := m.Wrap("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		RespondError(w, http.StatusNotFound, "nope")
	})
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/1", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/2", nil))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
		if f.GetName() != "test_service_requests_total" {
			continue
		}
		require.Len(t, f.GetMetric(), 1)
		metric := f.GetMetric()[0]
		assert.Equal(t, 2.0, metric.GetCounter().GetValue())
		labels := map[string]string{}
		for _, l := range metric.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		assert.Equal(t, map[string]string{"method": "GET", "endpoint": "/things/{id}", "status": "404"}, labels)
	}
	assert.Contains(t, names, "test_service_requests_total")
	assert.Contains(t, names, "test_service_request_duration_seconds")
	assert.Contains(t, names, "test_service_request_duration_summary")
}

func TestRegister_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "middleware-test", false)
	t.Cleanup(func() { logger.InitWithWriter(io.Discard, "", false) })

	router := mux.NewRouter()
	Register(router, DefaultConfig())
	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		id, _ := UserIDFromContext(r.Context())
		RespondJSON(w, http.StatusOK, Response{Success: true, Data: id})
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(UserIDHeader, "5")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":5}`, rec.Body.String())
	assert.True(t, strings.Contains(buf.String(), "HTTP request completed"))
}
