// Package notify hands confirmation messages to the mail pipeline. Delivery itself
// happens in a separate consumer of the NATS subject.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"fir-portal/internal/logging"
)

type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Message struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// NATS publishes each message as JSON on a fixed subject.
type NATS struct {
	conn    *nats.Conn
	subject string
}

func DialNATS(url, subject string, logger *slog.Logger) (*NATS, error) {
	logger = logging.Or(logger)
	nc, err := nats.Connect(url,
		nats.Name("fir-portal"),
		nats.Timeout(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATS{conn: nc, subject: subject}, nil
}

func (n *NATS) Send(_ context.Context, to, subject, body string) error {
	b, err := json.Marshal(Message{To: to, Subject: subject, Body: body, SentAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return n.conn.Publish(n.subject, b)
}

func (n *NATS) Close() {
	n.conn.Drain()
}

// Log only writes the message to the logger; used when no queue is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logging.Or(logger)}
}

func (l *Log) Send(ctx context.Context, to, subject, body string) error {
	l.logger.InfoContext(ctx, "notification", "to", to, "subject", subject, "body_len", len(body))
	return nil
}
