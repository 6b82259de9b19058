package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/fekuna/crpm-service/internal/pkg/rpc/rpctest"
)

type echoRequest struct {
	Text string `json:"text"`
}

type echoResponse struct {
	Text  string `json:"text"`
	Calls int    `json:"calls"`
}

type echoServer interface {
	Echo(ctx context.Context, req *echoRequest) (*echoResponse, error)
}

type echo struct{ calls int }

func (e *echo) Echo(_ context.Context, req *echoRequest) (*echoResponse, error) {
	if req.Text == "" {
		return nil, errors.New("empty")
	}
	e.calls++
	return &echoResponse{Text: req.Text, Calls: e.calls}, nil
}

const echoService = "test.Echo"

var echoDesc = grpc.ServiceDesc{
	ServiceName: echoService,
	HandlerType: (*echoServer)(nil),
	Methods:     []grpc.MethodDesc{Unary(echoService, "Echo", echoServer.Echo)},
}

func dial(t *testing.T, opts ...grpc.ServerOption) *grpc.ClientConn {
	return rpctest.Dial(t, func(s *grpc.Server) { s.RegisterService(&echoDesc, &echo{}) }, opts...)
}

func TestUnary_RoundTrip(t *testing.T) {
	conn := dial(t)

	var resp echoResponse
	require.NoError(t, Invoke(context.Background(), conn, echoService, "Echo", &echoRequest{Text: "hi"}, &resp))
	assert.Equal(t, "hi", resp.Text)
	assert.Equal(t, 1, resp.Calls)
}

func TestUnary_RunsInterceptor(t *testing.T) {
	var seen string
	conn := dial(t, grpc.UnaryInterceptor(func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return h(ctx, req)
	}))

	var resp echoResponse
	require.NoError(t, Invoke(context.Background(), conn, echoService, "Echo", &echoRequest{Text: "x"}, &resp))
	assert.Equal(t, "/test.Echo/Echo", seen)

	err := Invoke(context.Background(), conn, echoService, "Echo", &echoRequest{}, &resp)
	assert.ErrorContains(t, err, "empty")
}
