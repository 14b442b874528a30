package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"fir-portal/internal/attachment"
	"fir-portal/internal/audit"
	"fir-portal/internal/config"
	"fir-portal/internal/docstore"
	gweb "fir-portal/internal/grpcweb"
	"fir-portal/internal/handler"
	"fir-portal/internal/logging"
	"fir-portal/internal/metrics"
	"fir-portal/internal/middleware"
	"fir-portal/internal/notify"
	"fir-portal/internal/rpc"
	"fir-portal/internal/store"
	"fir-portal/internal/workflow"
)

func main() {
	cfg, err := config.Load(os.Getenv("FIR_CONFIG"))
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// database
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer pool.Close()
	st := store.New(pool)
	if err := st.Ping(ctx); err != nil {
		return err
	}
	logger.Info("connected to postgres")

	if err := st.Migrate(ctx, cfg.Database.Migrations); err != nil {
		logger.Warn("migration skipped", "path", cfg.Database.Migrations, "error", err)
	} else {
		logger.Info("migration applied")
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// audit store; the service runs without it
	auditLog := audit.Disabled()
	conn, err := docstore.Connect(ctx, docstore.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxAttempts: cfg.Mongo.MaxAttempts,
		RetryDelay:  cfg.Mongo.RetryDelay,
		Timeout:     cfg.Mongo.Timeout,
	}, logger)
	switch {
	case errors.Is(err, docstore.ErrUnavailable):
		logger.Warn("audit store unavailable, continuing without audit logging")
	case err != nil:
		return err
	default:
		defer conn.Close(context.Background())
		auditLog = audit.New(conn, logger, m)
	}

	var notifier notify.Notifier = notify.NewLog(logger)
	if cfg.NATS.URL != "" {
		n, err := notify.DialNATS(cfg.NATS.URL, cfg.NATS.Subject, logger)
		if err != nil {
			logger.Warn("nats unavailable, notifications will be logged", "error", err)
		} else {
			defer n.Close()
			notifier = n
		}
	}

	files, err := attachment.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		return err
	}

	svc := workflow.New(workflow.Deps{
		Cases:        st,
		Appointments: st,
		Attachments:  files,
		Notifier:     notifier,
		Audit:        auditLog,
		Metrics:      m,
		Logger:       logger,
	})
	h := handler.New(st, svc, cfg.JWT.Secret, logger)

	// grpc server
	rl := middleware.NewRateLimiter(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(rpc.Codec{}),
		grpc.MaxRecvMsgSize(cfg.Uploads.MaxBytes),
		grpc.ChainUnaryInterceptor(
			middleware.Logging(logger),
			middleware.RateLimit(rl),
			middleware.Auth(cfg.JWT.Secret),
		),
	)
	rpc.RegisterCaseServiceServer(srv, h)

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		return err
	}
	go func() {
		logger.Info("grpc listening", "port", cfg.Server.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc", "error", err)
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.Server.GRPCPort, int64(cfg.Uploads.MaxBytes), logger)
	if err != nil {
		return err
	}
	defer bridge.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	mux.Handle("/", bridge.Handler())

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Server.WebPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("grpc-web listening", "port", cfg.Server.WebPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.GracefulStop()
	return httpSrv.Shutdown(shutdownCtx)
}
