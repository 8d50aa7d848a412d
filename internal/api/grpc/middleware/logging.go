package middleware

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gophfeed/internal/logger"
)

// InterceptorLogger adapts the application logger to the interceptor logger.
func InterceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// NewLogging returns a unary interceptor that logs method, duration and
// status code of every finished call.
func NewLogging(l *logger.Logger) grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(InterceptorLogger(l),
		logging.WithLogOnEvents(logging.FinishCall),
	)
}

// NewClientLogging is the client side counterpart of NewLogging.
func NewClientLogging(l *logger.Logger) grpc.UnaryClientInterceptor {
	return logging.UnaryClientInterceptor(InterceptorLogger(l),
		logging.WithLogOnEvents(logging.FinishCall),
	)
}

// NewRecovery returns a unary interceptor that turns handler panics into
// Internal errors.
func NewRecovery(l *logger.Logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(
		recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			l.ErrorContext(ctx, "gRPC handler panicked",
				"panic", p,
				"stack", string(debug.Stack()))
			return status.Error(codes.Internal, "internal server error")
		}),
	)
}
