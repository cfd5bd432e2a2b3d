package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ScheduleService/internal/config"
	userServiceClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/userservice"
	"github.com/m04kA/SMC-ScheduleService/internal/migrate"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return serve(ctx, cfg, log, migrateUp)
		},
	}
	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "применить миграции перед стартом (только storage.driver=postgres)")

	return cmd
}

// bootstrap загружает конфигурацию и создает логгер
func bootstrap(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", configPath)
	return cfg, log, nil
}

func schedulingSettings(cfg *config.Config) (scheduling, error) {
	slots, err := cfg.Scheduling.SlotList()
	if err != nil {
		return scheduling{}, fmt.Errorf("scheduling slots: %w", err)
	}
	return scheduling{
		slots:          slots,
		horizonDays:    cfg.Scheduling.HorizonDays,
		maxHorizonDays: cfg.Scheduling.MaxHorizonDays,
	}, nil
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, migrateUp bool) error {
	log.Info("Starting SMC-ScheduleService %s...", Version)

	// Метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	settings, err := schedulingSettings(cfg)
	if err != nil {
		return err
	}

	store, err := buildStorage(ctx, cfg, metricsCollector, log)
	if err != nil {
		return err
	}
	defer store.close()

	if migrateUp {
		if err := runMigrations(ctx, cfg, log); err != nil {
			return err
		}
	}

	userClient := userServiceClient.NewClient(cfg.UserService.URL, cfg.UserService.TimeoutDuration(), log)
	log.Info("UserService client initialized (url=%s, timeout=%ds)", cfg.UserService.URL, cfg.UserService.Timeout)

	notifier, closeNotifier, err := buildNotifier(cfg.Notification, log)
	if err != nil {
		return err
	}
	defer closeNotifier()

	application := newApp(store, userClient, notifier, metricsCollector, settings, log)
	router := newRouter(application, metricsCollector, cfg.Metrics.Path, log)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

func runMigrations(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("migrations require storage.driver=%s, got %q", config.StoragePostgres, cfg.Storage.Driver)
	}

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrate.Up(ctx, db, log)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("Migrations applied: %d", applied)
	return nil
}
