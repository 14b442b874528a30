package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"fir-portal/internal/logging"
)

func TestNewFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, "warn", "json")
	l.Info("dropped")
	l.Warn("kept", "case_id", "FIR-20300101-0A0B0C0D")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"case_id":"FIR-20300101-0A0B0C0D"`)

	buf.Reset()
	logging.New(&buf, "bogus", "text").Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestContextLogger(t *testing.T) {
	assert.Nil(t, logging.FromContext(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := logging.ContextWithLogger(context.Background(), l)
	assert.Same(t, l, logging.FromContext(ctx))

	assert.Same(t, slog.Default(), logging.Or(nil))
	assert.Same(t, l, logging.Or(l))
}
