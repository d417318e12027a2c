package pb

import (
	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified name of the Connect4 service in
// connect4.proto.
const ServiceName = "connect4.Connect4"

type Connect4Client interface {
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
	Move(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*MoveResponse, error)
}

type connect4Client struct {
	cc *grpc.ClientConn
}

func NewConnect4Client(cc *grpc.ClientConn) Connect4Client {
	return &connect4Client{cc}
}

func (c *connect4Client) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Analyze", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *connect4Client) Move(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*MoveResponse, error) {
	out := new(MoveResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Move", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type Connect4Server interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	Move(context.Context, *MoveRequest) (*MoveResponse, error)
}

func RegisterConnect4Server(s *grpc.Server, srv Connect4Server) {
	s.RegisterService(&serviceDesc, srv)
}

func analyzeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Connect4Server).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Analyze",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Connect4Server).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func moveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Connect4Server).Move(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Move",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(Connect4Server).Move(ctx, req.(*MoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Connect4Server)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Analyze", Handler: analyzeHandler},
		{MethodName: "Move", Handler: moveHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "connect4.proto",
}
