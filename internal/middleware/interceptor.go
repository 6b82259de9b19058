package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/fekuna/crpm-service/internal/model"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
)

const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestID returns the id attached by the interceptor or the HTTP shell, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type ContextInterceptor struct {
	logger logger.ZapLogger
}

func NewContextInterceptor(logger logger.ZapLogger) *ContextInterceptor {
	return &ContextInterceptor{logger: logger}
}

// Unary tags the call with a request id (taken from metadata when present),
// converts domain errors to gRPC statuses and logs the outcome.
func (i *ContextInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(RequestIDHeader); len(vals) > 0 {
				requestID = vals[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		err = ToStatus(err)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
			zap.String("code", status.Code(err).String()),
		}
		if status.Code(err) == codes.Internal || status.Code(err) == codes.Unknown {
			i.logger.Error("gRPC call failed", append(fields, zap.Error(err))...)
		} else {
			i.logger.Debug("gRPC call", fields...)
		}
		return resp, err
	}
}

// ToStatus maps domain errors to gRPC status errors. Errors that already carry
// a status are returned unchanged; anything else becomes Internal.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, model.ErrDuplicateKey):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, model.ErrCustomerNotFound), errors.Is(err, model.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrInvalidQuantity), errors.Is(err, model.ErrInvalidID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
