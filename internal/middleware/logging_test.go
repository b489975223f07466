package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		receipt   string
		err       error
		wantLevel string
		wantCode  string
	}{
		{name: "ok", wantLevel: "INFO"},
		{name: "ok with token", receipt: "r-1", wantLevel: "INFO"},
		{name: "client error", err: connect.NewError(connect.CodeNotFound, errors.New("receipt not found")), wantLevel: "WARN", wantCode: "not_found"},
		{name: "server error", err: errors.New("disk on fire"), wantLevel: "ERROR", wantCode: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			handler := LoggingInterceptor(logger)(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return connect.NewResponse(&ping{}), nil
			})

			ctx := context.Background()
			if tt.receipt != "" {
				ctx = WithTokenReceiptID(ctx, tt.receipt)
			}
			_, err := handler(ctx, connect.NewRequest(&ping{}))
			assert.Equal(t, tt.err, err)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Contains(t, entry, "duration_ms")
			if tt.receipt != "" {
				assert.Equal(t, tt.receipt, entry["token_receipt_id"])
			} else {
				assert.NotContains(t, entry, "token_receipt_id")
			}
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, entry["code"])
			} else {
				assert.NotContains(t, entry, "code")
			}
		})
	}
}
