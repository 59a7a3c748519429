package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation ID in both directions.
const RequestIDHeader = "X-Request-Id"

// GetRequestID returns the correlation ID assigned by LoggingInterceptor, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, user ID, request ID, duration, and any error codes/messages.
// The request ID is taken from the X-Request-Id header when the client sent one and is
// echoed back on the response or error metadata.
//
// Install it before the auth interceptors so that rejected calls are logged too; the
// user ID is then read back from the context the handler saw.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			requestID := req.Header().Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			ctx = context.WithValue(ctx, RequestIDKey, requestID)
			seen := &identity{}
			ctx = context.WithValue(ctx, identityKey, seen)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			attrs := []any{
				"procedure", procedure,
				"request_id", requestID,
				"user_id", seen.userID,
				"duration_ms", duration,
			}

			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(RequestIDHeader, requestID)
					logger.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
				} else {
					logger.Error("RPC error", append(attrs, "error", err)...)
				}
				return resp, err
			}

			if resp != nil {
				resp.Header().Set(RequestIDHeader, requestID)
			}
			logger.Info("RPC ok", attrs...)
			return resp, nil
		}
	}
}
