package middleware

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"fir-portal/internal/logging"
)

// Logging attaches a per-call logger to the context and logs each completed call.
func Logging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	logger = logging.Or(logger)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		l := logger.With("method", info.FullMethod, "peer", peerKey(ctx))
		resp, err := next(logging.ContextWithLogger(ctx, l), req)

		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		l.Log(ctx, level, "rpc", "code", status.Code(err).String(), "duration", time.Since(start))
		return resp, err
	}
}
