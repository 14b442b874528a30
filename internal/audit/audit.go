// Package audit appends case actions and system events to the secondary store.
// Every write is best-effort: failures are logged and never reach the caller.
package audit

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"fir-portal/internal/docstore"
	"fir-portal/internal/logging"
	"fir-portal/internal/metrics"
)

const (
	Success = "success"
	Failure = "failure"
)

// Sink receives documents; *docstore.Conn satisfies it.
type Sink interface {
	Insert(ctx context.Context, collection string, doc any) error
}

type Log struct {
	sink    Sink
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// New returns a log that writes to sink.
func New(sink Sink, logger *slog.Logger, m *metrics.Metrics) *Log {
	return &Log{sink: sink, logger: logging.Or(logger), metrics: m, now: time.Now}
}

// Disabled returns the log used when the secondary store was unavailable at startup.
func Disabled() *Log {
	return &Log{now: time.Now}
}

func (l *Log) Enabled() bool { return l != nil && l.sink != nil }

// Record appends a system event.
func (l *Log) Record(ctx context.Context, eventType, message, outcome string) {
	if !l.Enabled() {
		return
	}
	l.write(ctx, docstore.SystemEvents, bson.M{
		"event_type": eventType,
		"message":    message,
		"status":     outcome,
		"timestamp":  l.now().UTC(),
	})
}

// Action appends a case action. caseID is the public FIR identifier, or empty.
func (l *Log) Action(ctx context.Context, action, actor, caseID, message, outcome string) {
	if !l.Enabled() {
		return
	}
	l.write(ctx, docstore.AuditLogs, bson.M{
		"action":    action,
		"actor":     actor,
		"case_id":   caseID,
		"message":   message,
		"status":    outcome,
		"timestamp": l.now().UTC(),
	})
}

func (l *Log) write(ctx context.Context, coll string, doc bson.M) {
	// request cancellation must not cut an audit write short
	ctx = context.WithoutCancel(ctx)
	if err := l.sink.Insert(ctx, coll, doc); err != nil {
		l.logger.Warn("audit write failed", "collection", coll, "error", err)
		l.metrics.BestEffortFailure("audit")
	}
}
