package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs one line per RPC. Client mistakes (bad input,
// missing receipt, rejected token) log at Warn, server faults at Error.
// A nil logger means slog.Default().
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			log := logger
			if log == nil {
				log = slog.Default()
			}

			start := time.Now()
			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("protocol", req.Peer().Protocol),
			}
			if receiptID := GetTokenReceiptID(ctx); receiptID != "" {
				attrs = append(attrs, slog.String("token_receipt_id", receiptID))
			}

			resp, err := next(ctx, req)

			attrs = append(attrs, slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			if err == nil {
				log.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, slog.String("code", code.String()), slog.Any("error", err))
			log.LogAttrs(ctx, levelForCode(code), "RPC failed", attrs...)
			return resp, err
		}
	}
}

func levelForCode(code connect.Code) slog.Level {
	switch code {
	case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeAlreadyExists,
		connect.CodeUnauthenticated, connect.CodePermissionDenied, connect.CodeCanceled:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
