package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Config holds middleware configuration
type Config struct {
	EnableLogging bool
	EnableTracing bool
}

// DefaultConfig returns default middleware configuration
func DefaultConfig() Config {
	return Config{
		EnableLogging: true,
		EnableTracing: true,
	}
}

// Register installs the middleware chain on router. Tracing runs outermost so
// request logs carry the trace id.
func Register(router *mux.Router, cfg Config) {
	if cfg.EnableTracing {
		router.Use(func(next http.Handler) http.Handler {
			return TracingMiddleware("http-request", next)
		})
	}
	if cfg.EnableLogging {
		router.Use(LoggingMiddleware)
	}
	router.Use(CallerMiddleware)
}
