package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tabsplit/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ReceiptIDKey is the context key for the receipt an edit token grants access to.
const ReceiptIDKey contextKey = "receipt_id"

// GetTokenReceiptID extracts the receipt ID granted by the request's edit token.
// Returns empty string if no valid token was presented.
func GetTokenReceiptID(ctx context.Context) string {
	receiptID, _ := ctx.Value(ReceiptIDKey).(string)
	return receiptID
}

// WithTokenReceiptID returns a copy of ctx that grants edit access to receiptID.
func WithTokenReceiptID(ctx context.Context, receiptID string) context.Context {
	return context.WithValue(ctx, ReceiptIDKey, receiptID)
}

// bearerToken returns the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// ReceiptTokens returns an interceptor that validates edit tokens if present,
// but allows requests without one. Reads are open; the service decides which
// procedures need a token for the receipt they touch.
func ReceiptTokens(tokens *auth.TokenManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader != "" {
				tokenString, ok := bearerToken(authHeader)
				if !ok {
					return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
				}

				claims, err := tokens.Validate(tokenString)
				if err != nil {
					slog.Warn("Rejected edit token", "procedure", req.Spec().Procedure, "error", err)
					return nil, connect.NewError(connect.CodeUnauthenticated, err)
				}
				ctx = WithTokenReceiptID(ctx, claims.ReceiptID)
			}

			return next(ctx, req)
		}
	}
}
