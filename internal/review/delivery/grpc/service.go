package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "feedback.v1.FeedbackService"

// Full method names
const (
	GetReviewMethod          = "/" + ServiceName + "/GetReview"
	ListProductReviewsMethod = "/" + ServiceName + "/ListProductReviews"
	ListUserFavoritesMethod  = "/" + ServiceName + "/ListUserFavorites"
)

// FeedbackServiceServer is the server API for FeedbackService. Requests carry
// a single id; responses are protobuf well-known struct values.
type FeedbackServiceServer interface {
	GetReview(context.Context, *wrapperspb.UInt64Value) (*structpb.Struct, error)
	ListProductReviews(context.Context, *wrapperspb.UInt64Value) (*structpb.Struct, error)
	ListUserFavorites(context.Context, *wrapperspb.UInt64Value) (*structpb.ListValue, error)
}

// RegisterFeedbackServiceServer registers srv on s
func RegisterFeedbackServiceServer(s grpc.ServiceRegistrar, srv FeedbackServiceServer) {
	s.RegisterService(&FeedbackServiceDesc, srv)
}

// FeedbackServiceDesc describes FeedbackService for grpc.Server
var FeedbackServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FeedbackServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetReview", Handler: getReviewHandler},
		{MethodName: "ListProductReviews", Handler: listProductReviewsHandler},
		{MethodName: "ListUserFavorites", Handler: listUserFavoritesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "feedback/v1/feedback.proto",
}

func getReviewHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackServiceServer).GetReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetReviewMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackServiceServer).GetReview(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func listProductReviewsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackServiceServer).ListProductReviews(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListProductReviewsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackServiceServer).ListProductReviews(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func listUserFavoritesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedbackServiceServer).ListUserFavorites(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListUserFavoritesMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedbackServiceServer).ListUserFavorites(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// FeedbackServiceClient is the client API for FeedbackService
type FeedbackServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFeedbackServiceClient creates a client on cc
func NewFeedbackServiceClient(cc grpc.ClientConnInterface) *FeedbackServiceClient {
	return &FeedbackServiceClient{cc: cc}
}

// GetReview fetches one review view
func (c *FeedbackServiceClient) GetReview(ctx context.Context, id uint64, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetReviewMethod, wrapperspb.UInt64(id), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProductReviews fetches the first page of a product's reviews
func (c *FeedbackServiceClient) ListProductReviews(ctx context.Context, productID uint64, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListProductReviewsMethod, wrapperspb.UInt64(productID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUserFavorites fetches the first page of a user's favorites
func (c *FeedbackServiceClient) ListUserFavorites(ctx context.Context, userID uint64, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListUserFavoritesMethod, wrapperspb.UInt64(userID), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
