// Package server wires configuration, storage, the services and the
// gRPC and metrics listeners into a runnable application.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/backprop/server/internal/logging"
	"github.com/backprop/server/internal/server/auth"
	"github.com/backprop/server/internal/server/config"
	gs "github.com/backprop/server/internal/server/grpc"
	"github.com/backprop/server/internal/server/mail"
	"github.com/backprop/server/internal/server/metrics"
	"github.com/backprop/server/internal/server/repositories/repomanager"
	"github.com/backprop/server/internal/server/services"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	metrics *metrics.Metrics
	grpc    *gs.GRPCServer
}

// NewApp opens the database, applies migrations and builds every component.
// The signing secret exists before the gRPC server is constructed.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel)

	secret := auth.NewSecret(c.SecretKey)
	if secret.IsFallback() {
		logger.Warn(ctx, "no SECRET configured, signing tokens with the development fallback secret")
	}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	mailer, err := newMailer(c, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	met := metrics.New()
	us := services.NewUserService(db, rm, auth.NewSigner(secret), mailer, met, logger)
	ds := services.NewDatasetService(db, rm, logger)
	ps := services.NewProjectService(db, rm, logger)

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		metrics: met,
		grpc:    gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, ds, ps),
	}, nil
}

func newMailer(c *config.Config, logger logging.Logger) (mail.Sender, error) {
	if c.SMTPHost == "" {
		return mail.NewLogSender(logger.With("module", "mail")), nil
	}
	return mail.NewSMTPSender(c.SMTPHost, c.SMTPPort, c.SMTPUser, c.SMTPPassword, c.SMTPFrom)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or a listener fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.grpc.Run(ctx)
	})
	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(ctx, app.config.MetricsAddr, app.metrics.Handler(), app.config.ShutdownTimeout, app.logger)
		})
	}

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "closing database", "error", cerr)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}

// serveMetrics exposes handler on addr under /metrics until ctx is done.
func serveMetrics(ctx context.Context, addr string, handler http.Handler, timeout time.Duration, logger logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting metrics server", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
