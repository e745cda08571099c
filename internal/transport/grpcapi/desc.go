package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName         = "cricket.v1.Simulator"
	SimulateMatchMethod = "/" + ServiceName + "/SimulateMatch"
	ProjectMatchMethod  = "/" + ServiceName + "/ProjectMatch"
)

// SimulatorServer is the server API for cricket.v1.Simulator. Requests and
// responses are JSON-shaped structs mirroring the service's request types.
type SimulatorServer interface {
	SimulateMatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ProjectMatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes cricket.v1.Simulator for grpc.ServiceRegistrar.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SimulatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SimulateMatch", Handler: simulateMatchHandler},
		{MethodName: "ProjectMatch", Handler: projectMatchHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cricket/v1/simulator.proto",
}

// RegisterSimulatorServer registers srv on s.
func RegisterSimulatorServer(s grpc.ServiceRegistrar, srv SimulatorServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func simulateMatchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServer).SimulateMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SimulateMatchMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SimulatorServer).SimulateMatch(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func projectMatchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServer).ProjectMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ProjectMatchMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SimulatorServer).ProjectMatch(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Client is a thin caller for cricket.v1.Simulator.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func (c *Client) SimulateMatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SimulateMatchMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProjectMatch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ProjectMatchMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
