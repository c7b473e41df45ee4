package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/postpage/internal/ctxkeys"
)

func TestNewStampsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(slog.NewJSONHandler(&buf, nil)))

	ctx := ctxkeys.WithRequestID(context.Background(), "req-123")
	log.ErrorContext(ctx, "post fetch failed", "id", "7")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "7", entry["id"])
}

func TestNewFansOut(t *testing.T) {
	var first, second bytes.Buffer
	log := slog.New(New(
		slog.NewTextHandler(&first, nil),
		slog.NewTextHandler(&second, nil),
	))

	log.Info("server starting")

	assert.Contains(t, first.String(), "server starting")
	assert.Contains(t, second.String(), "server starting")
	assert.NotContains(t, first.String(), "request_id")
}
