// Package docstore connects to the optional MongoDB document store that holds
// audit and system events. The store may be down; Connect either returns a usable
// connection or ErrUnavailable, and callers carry on without it.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"fir-portal/internal/logging"
)

// ErrUnavailable means no connection could be established. It is an expected
// outcome, not a failure of the process.
var ErrUnavailable = errors.New("docstore: unavailable")

const (
	AuditLogs    = "audit_logs"
	SystemEvents = "system_events"
)

type Config struct {
	URI         string
	Database    string
	MaxAttempts int
	RetryDelay  time.Duration
	Timeout     time.Duration
}

// backend is the slice of the driver Connect needs.
type backend interface {
	Ping(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, collection string, doc any) error
	Close(ctx context.Context) error
}

type dialFunc func(ctx context.Context, cfg Config) (backend, error)

// Conn is an established secondary-store connection shared by the whole process.
type Conn struct {
	b       backend
	timeout time.Duration
}

// Connect tries cfg.MaxAttempts handshakes, sleeping cfg.RetryDelay between failures.
// On success the collections are indexed and a system_start event is written; errors
// in that step are logged and the connection is still returned.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*Conn, error) {
	return connect(ctx, cfg, logging.Or(logger), dialMongo, sleepCtx)
}

func connect(ctx context.Context, cfg Config, logger *slog.Logger, dial dialFunc, sleep func(context.Context, time.Duration) error) (*Conn, error) {
	if cfg.URI == "" {
		logger.Info("docstore not configured")
		return nil, ErrUnavailable
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		b, err := handshake(ctx, cfg, dial)
		if err == nil {
			c := &Conn{b: b, timeout: cfg.Timeout}
			c.bootstrap(ctx, logger)
			return c, nil
		}
		logger.Warn("docstore connection attempt failed", "attempt", attempt, "error", err)
		if attempt < cfg.MaxAttempts {
			if err := sleep(ctx, cfg.RetryDelay); err != nil {
				logger.Warn("docstore connect cancelled", "attempt", attempt)
				return nil, ErrUnavailable
			}
		}
	}
	logger.Error("docstore max retries reached, continuing without it", "attempts", cfg.MaxAttempts)
	return nil, ErrUnavailable
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func handshake(ctx context.Context, cfg Config, dial dialFunc) (backend, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	b, err := dial(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := b.Ping(ctx); err != nil {
		_ = b.Close(context.Background())
		return nil, err
	}
	return b, nil
}

func (c *Conn) bootstrap(ctx context.Context, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.b.EnsureIndexes(ctx); err != nil {
		logger.Error("docstore index provisioning failed", "error", err)
		return
	}
	err := c.b.Insert(ctx, SystemEvents, bson.M{
		"event_type": "system_start",
		"timestamp":  time.Now().UTC(),
		"message":    "Database initialized",
		"status":     "success",
	})
	if err != nil {
		logger.Error("docstore bootstrap event failed", "error", err)
		return
	}
	logger.Info("docstore connected and collections initialized")
}

// Insert appends one document to collection within the connection's timeout.
func (c *Conn) Insert(ctx context.Context, collection string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.b.Insert(ctx, collection, doc)
}

func (c *Conn) Close(ctx context.Context) error {
	return c.b.Close(ctx)
}

type mongoBackend struct {
	client *mongo.Client
	db     *mongo.Database
}

func dialMongo(ctx context.Context, cfg Config) (backend, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout).
		SetSocketTimeout(cfg.Timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return &mongoBackend{client: client, db: client.Database(cfg.Database)}, nil
}

func (m *mongoBackend) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoBackend) EnsureIndexes(ctx context.Context) error {
	indexes := map[string]string{
		AuditLogs:    "action",
		SystemEvents: "event_type",
	}
	for coll, field := range indexes {
		_, err := m.db.Collection(coll).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "timestamp", Value: 1}}},
			{Keys: bson.D{{Key: field, Value: 1}}},
		})
		if err != nil {
			return fmt.Errorf("index %s: %w", coll, err)
		}
	}
	return nil
}

func (m *mongoBackend) Insert(ctx context.Context, collection string, doc any) error {
	_, err := m.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (m *mongoBackend) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
