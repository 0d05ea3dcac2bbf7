package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"google.golang.org/grpc"
	"gorm.io/gorm"

	"github.com/tair/feedback-service/docs"
	"github.com/tair/feedback-service/internal/cleanup"
	"github.com/tair/feedback-service/internal/config"
	"github.com/tair/feedback-service/internal/favorite"
	favoritecommand "github.com/tair/feedback-service/internal/favorite/usecase/command"
	"github.com/tair/feedback-service/internal/review"
	grpcDelivery "github.com/tair/feedback-service/internal/review/delivery/grpc"
	reviewcommand "github.com/tair/feedback-service/internal/review/usecase/command"
	"github.com/tair/feedback-service/internal/schema"
	"github.com/tair/feedback-service/kafka"
	"github.com/tair/feedback-service/pkg/logger"
	"github.com/tair/feedback-service/pkg/middleware"
	"github.com/tair/feedback-service/pkg/tracing"
)

// eventPublisher publishes both review and favorite events
type eventPublisher interface {
	favoritecommand.EventPublisher
	reviewcommand.EventPublisher
}

func serveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC servers and the Kafka consumer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint, version)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if err := schema.Migrate(db); err != nil {
		return err
	}

	var events eventPublisher = kafka.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			return err
		}
		defer publisher.Close()
		events = publisher

		consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID,
			[]string{kafka.TopicUserEvents, kafka.TopicProductEvents})
		if err != nil {
			return err
		}
		defer consumer.Close()

		cleanup.NewPurger(
			favorite.InitializePurgeHandler(db),
			review.InitializePurgeHandler(db),
		).Register(consumer)
		if err := consumer.Start(ctx); err != nil {
			return err
		}
	} else {
		logger.Logger.Info().Msg("Kafka disabled, events are dropped")
	}

	httpServer, err := newHTTPServer(cfg, db, events)
	if err != nil {
		return err
	}
	grpcServer, err := newGRPCServer(db)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			errCh <- err
			return
		}
		logger.Logger.Info().Str("port", cfg.GRPCPort).Msg("gRPC server starting")
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Logger.Info().Msg("Shutting down servers...")
	case err = <-errCh:
		logger.Logger.Error().Err(err).Msg("Server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Logger.Error().Err(shutdownErr).Msg("HTTP server shutdown failed")
	}
	grpcServer.GracefulStop()

	return err
}

func newHTTPServer(cfg *config.Config, db *gorm.DB, events eventPublisher) (*http.Server, error) {
	favoriteHandler, err := favorite.InitializeHTTPHandler(db, events, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	reviewHandler, err := review.InitializeHTTPHandler(db, events, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	middleware.Register(router, middleware.DefaultConfig())
	favoriteHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	registerHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = "localhost:" + cfg.HTTPPort
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	c := cors.New(corsOptions())

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// corsOptions allows any origin. The caller is identified by the gateway
// header, so no credentials are shared.
func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}
}

func newGRPCServer(db *gorm.DB) (*grpc.Server, error) {
	srv, err := review.InitializeGRPCServer(db, favorite.InitializeListUserFavoritesHandler(db))
	if err != nil {
		return nil, err
	}
	return grpcDelivery.NewGRPCServer(srv), nil
}

func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			middleware.RespondError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}

		middleware.RespondJSON(w, http.StatusOK, middleware.Response{
			Success: true,
			Message: "Feedback service is healthy",
		})
	}).Methods("GET")
}
