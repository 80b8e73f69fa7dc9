package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retail/cmd"
	httpadapter "retail/internal/adapters/in/http"
	"retail/internal/adapters/out/postgres/migrations"
	"retail/internal/core/application/notifications"
	"retail/internal/core/application/usecases/commands"
	"retail/internal/pkg/logging"
	"retail/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, syncLogger, err := logging.New(config.LogLevel, config.LogDevelopment)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer func() { _ = syncLogger() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(ctx, config)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	notifier, closeNotifier, err := cmd.NewNotifier(config, logger)
	if err != nil {
		log.Fatalf("create notifier: %v", err)
	}
	hook := notifications.NewHook(notifier, m, logger, config.NotificationTimeout)

	app := cmd.NewCompositionRoot(config, gormDB, hook, m, logger)
	mustEnsureAdmin(ctx, app, config)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), httpadapter.RouterConfig{
		Users:   app.UserRepository(),
		Metrics: m,
		Logger:  logger,
	})
	if err != nil {
		log.Fatalf("create router: %v", err)
	}

	go func() {
		logger.Info("http server started", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}

	jobManager.StopAll()
	hook.Wait()

	if err := closeNotifier(); err != nil {
		logger.Error("close notifier", "error", err)
	}
	closeDatabase(gormDB, logger)
}

func mustOpenDatabase(ctx context.Context, config cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("get sql.DB: %v", err)
	}
	if err := migrations.Up(ctx, sqlDB); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	return gormDB
}

func mustEnsureAdmin(ctx context.Context, app cmd.CompositionRoot, config cmd.Config) {
	if config.AdminPassword == "" {
		return
	}

	command, err := commands.NewEnsureUserCommand(config.AdminUsername, config.AdminPassword)
	if err != nil {
		log.Fatalf("admin user: %v", err)
	}
	if err := app.CreateEnsureUserCommandHandler().Handle(ctx, command); err != nil {
		log.Fatalf("ensure admin user: %v", err)
	}
}

func closeDatabase(gormDB *gorm.DB, logger *slog.Logger) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("close database", "error", err)
	}
}
