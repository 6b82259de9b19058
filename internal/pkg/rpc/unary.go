package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// Unary builds a grpc.MethodDesc around a typed handler method, doing what
// protoc-gen-go-grpc would generate: decode the request, then run it through
// the server's interceptor chain.
func Unary[S any, Req any, Resp any](service, method string, fn func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return fn(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return fn(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Invoke calls a unary method using the JSON codec.
func Invoke(ctx context.Context, cc grpc.ClientConnInterface, service, method string, req, resp any, opts ...grpc.CallOption) error {
	opts = append(opts, grpc.CallContentSubtype(CodecName))
	return cc.Invoke(ctx, "/"+service+"/"+method, req, resp, opts...)
}
