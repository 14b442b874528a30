package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fir-portal/internal/notify"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewLog(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, n.Send(context.Background(), "a@b.com", "FIR Submitted", "body"))
	assert.Contains(t, buf.String(), "to=a@b.com")
	assert.NotContains(t, buf.String(), "body=")
}
