package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	emailPkg "workout/internal/adapters/email"
	web "workout/internal/adapters/http"
	"workout/internal/adapters/http/perf"
	"workout/internal/adapters/storage"
	accountStore "workout/internal/adapters/storage/account"
	noteStore "workout/internal/adapters/storage/note"
	ratingStore "workout/internal/adapters/storage/rating"
	"workout/internal/config"
	"workout/internal/telemetry"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// shutdownTimeout bounds graceful shutdown of the HTTP server.
const shutdownTimeout = 10 * time.Second

// defaultFrom is used for outgoing mail when WORKOUT_RESEND_FROM is unset.
const defaultFrom = "Workout Plan <noreply@example.com>"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr, dbPath, staticDir string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := setup(addr, dbPath)
			if err != nil {
				return err
			}
			defer closer.Close()
			return runServe(cmd.Context(), cfg, staticDir)
		},
	}
	serve.Flags().StringVar(&staticDir, "static", "", "directory served under /static/")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := setup(addr, dbPath)
			if err != nil {
				return err
			}
			defer closer.Close()
			db, err := openDB(cmd.Context(), cfg.DBPath)
			if err != nil {
				return err
			}
			return db.Close()
		},
	}

	root := &cobra.Command{
		Use:          "workout",
		Short:        "Personalized workout plan web app",
		Version:      version,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.PersistentFlags().StringVar(&addr, "addr", "", "listen address (overrides WORKOUT_ADDR)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides WORKOUT_DB_PATH)")
	root.AddCommand(serve, migrate)
	return root
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(addr, dbPath string) (config.Config, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	_, closer, err := telemetry.InitLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, closer, nil
}

// openDB opens the database and brings the schema up to date.
func openDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := storage.MigrateDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	schema, err := storage.SchemaVersion(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("db_event", "event", "migrated", "path", path, "schema", schema)
	return db, nil
}

func newMailer(cfg config.Config) emailPkg.Sender {
	from := cfg.ResendFrom
	if from == "" {
		from = defaultFrom
	}
	if cfg.ResendKey != "" {
		slog.Info("email_event", "event", "sender_configured", "provider", "resend")
		return emailPkg.NewResendSender(cfg.ResendKey, from)
	}
	if cfg.Production() {
		slog.Warn("email_event", "event", "sender_disabled", "hint", "WORKOUT_RESEND_KEY is not set")
	}
	return emailPkg.NewNoopSender()
}

func runServe(ctx context.Context, cfg config.Config, staticDir string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector, cfg.SlowQuery)

	stores := &web.Stores{
		AccountStore: accountStore.NewSQLiteStore(timedDB),
		NoteStore:    noteStore.NewSQLiteStore(timedDB),
		RatingStore:  ratingStore.NewSQLiteStore(timedDB),
	}

	opts := web.Options{
		Production:  cfg.Production(),
		CSRFKeyHex:  cfg.CSRFKeyHex,
		StaticDir:   staticDir,
		RateLimit:   cfg.RateLimit,
		SlowRequest: cfg.SlowRequest,
		Collector:   collector,
		Mailer:      newMailer(cfg),
	}

	if cfg.Telemetry == config.TelemetryStdout {
		var out io.Writer = os.Stdout
		if cfg.LogFile != "" {
			rotating := telemetry.NewRotatingFile(cfg.LogFile + ".otel")
			defer rotating.Close()
			out = rotating
		}
		tel, err := telemetry.InitTelemetry(ctx, out)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := tel.Shutdown(shutdownCtx); err != nil {
				slog.Error("telemetry_shutdown_failed", "error", err)
			}
		}()
		opts.Tracer = tel.Tracer
		opts.Recorder = tel.Recorder
	}

	handler, err := web.NewMux(stores, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server_starting", "version", version, "addr", cfg.Addr, "env", cfg.Env, "schema", storage.LatestSchemaVersion())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
