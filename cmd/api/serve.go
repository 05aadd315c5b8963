package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"logidocs/internal/config"
	"logidocs/internal/database"
	"logidocs/internal/database/migration"
	handlers "logidocs/internal/http/handler"
	"logidocs/internal/http/middleware"
	"logidocs/internal/logging"
	"logidocs/internal/otel"
	"logidocs/internal/repository/postgres"
	"logidocs/internal/service"
	"logidocs/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.Load(), !skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not create the schema on startup")
	return cmd
}

func serve(ctx context.Context, cfg *config.AppConfig, runMigrations bool) error {
	logger := logging.New(os.Stdout, logging.LoadLocation(cfg.Timezone), cfg.LogLevel)

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return err
	}
	defer db.Close()

	if runMigrations {
		if err := migrate(ctx, db, cfg, logger); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := newApp(cfg, db, reg, logger)
	if err != nil {
		logger.Error("failed to build application", "error", err)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", ":"+cfg.Port, "storage_root", cfg.Storage.Root)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		logger.Error("failed to start server", "error", err)
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func openDatabase(ctx context.Context, cfg *config.AppConfig, logger *log.Logger) (*sql.DB, error) {
	return database.NewPostgres(ctx, cfg.Database, logger)
}

func migrate(ctx context.Context, db *sql.DB, cfg *config.AppConfig, logger *log.Logger) error {
	return migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host)
}

// newApp wires repositories, services, middleware and routes onto a fresh fiber app.
func newApp(cfg *config.AppConfig, db *sql.DB, reg *prometheus.Registry, logger *log.Logger) (*fiber.App, error) {
	store, err := storage.NewOSLocal(cfg.Storage.Root)
	if err != nil {
		return nil, err
	}
	storeMetrics, err := storage.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	operationRepo := postgres.NewOperationPostgres(db)
	companyRepo := postgres.NewCompanyPostgres(db)
	participantRepo := postgres.NewParticipantPostgres(db)
	documentRepo := postgres.NewDocumentPostgres(db)

	svcs := handlers.Services{
		Operations:   service.NewOperationService(operationRepo),
		Companies:    service.NewCompanyService(companyRepo),
		Participants: service.NewParticipantService(operationRepo, companyRepo, participantRepo),
		Documents: service.NewDocumentService(cfg.Storage, store, documentRepo, participantRepo,
			storeMetrics, logger),
		Cascade: service.NewCascadeService(cfg.Storage, store, operationRepo, participantRepo,
			storeMetrics, logger),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Oversized uploads must reach the service to get a validation error
		BodyLimit: int(2 * cfg.Storage.MaxUploadBytes),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(httpMetrics.Handler())
	app.Use(cors.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, db, svcs, cfg)
	return app, nil
}
