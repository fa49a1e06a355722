package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "wardrobe.api.v1alpha1.WardrobeService"

// Method names
const (
	MethodGetPlacement = "GetPlacement"
	MethodEquip        = "Equip"
	MethodDequip       = "Dequip"
	MethodListCatalog  = "ListCatalog"
)

// WardrobeServiceServer is the server API for the wardrobe service.
// Requests and responses are google.protobuf.Struct messages.
type WardrobeServiceServer interface {
	GetPlacement(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Equip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Dequip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCatalog(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(WardrobeServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(WardrobeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(srv.(WardrobeServiceServer), ctx, req.(*structpb.Struct))
		})
	}
}

// ServiceDesc is the grpc.ServiceDesc for the wardrobe service
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WardrobeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodGetPlacement, Handler: unaryHandler(MethodGetPlacement, WardrobeServiceServer.GetPlacement)},
		{MethodName: MethodEquip, Handler: unaryHandler(MethodEquip, WardrobeServiceServer.Equip)},
		{MethodName: MethodDequip, Handler: unaryHandler(MethodDequip, WardrobeServiceServer.Dequip)},
		{MethodName: MethodListCatalog, Handler: unaryHandler(MethodListCatalog, WardrobeServiceServer.ListCatalog)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wardrobe/api/v1alpha1/wardrobe.proto",
}

// RegisterWardrobeServiceServer registers srv on s
func RegisterWardrobeServiceServer(s grpc.ServiceRegistrar, srv WardrobeServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// FullMethod returns the "/service/method" path for a method name
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// Client calls the wardrobe service over a client connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a wardrobe client on cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req and returns the decoded response
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
