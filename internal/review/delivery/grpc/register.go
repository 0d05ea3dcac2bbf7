package grpc

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// NewGRPCServer builds a grpc.Server with tracing, logging and metrics,
// serving srv and the reflection service
func NewGRPCServer(srv FeedbackServiceServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor,
			MetricsInterceptor,
		),
	}, opts...)

	server := grpc.NewServer(opts...)
	RegisterFeedbackServiceServer(server, srv)
	reflection.Register(server)
	return server
}
