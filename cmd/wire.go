package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-ScheduleService/internal/config"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/datastore"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/notification"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	submitBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"

	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/availability"
)

// storage хранилища выбранного драйвера
type storage struct {
	availability availability.Repository
	appointments submitBooking.AppointmentRepository
	close        func()
}

// openDatabase подключается к PostgreSQL и настраивает пул соединений
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// buildStorage создает репозитории по storage.driver.
// Для postgres с метриками соединение оборачивается в dbmetrics.
func buildStorage(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageHTTP:
		client := datastore.NewClient(cfg.DataStore.URL, cfg.DataStore.TimeoutDuration(), log)
		log.Info("Storage: data store API at %s (timeout=%ds)", cfg.DataStore.URL, cfg.DataStore.Timeout)
		return &storage{
			availability: datastore.NewAvailabilityRepository(client),
			appointments: datastore.NewAppointmentRepository(client),
			close:        func() {},
		}, nil

	case config.StoragePostgres:
		db, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("Storage: connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var executor dbmetrics.DBExecutor = db
		stopCh := make(chan struct{})
		if m != nil {
			executor = dbmetrics.WrapWithDefault(db, m, stopCh)
			log.Info("Database metrics collection started")
		}
		return &storage{
			availability: availabilityRepo.NewRepository(executor),
			appointments: appointmentRepo.NewRepository(executor),
			close: func() {
				close(stopCh)
				_ = db.Close()
			},
		}, nil

	case config.StorageMemory:
		log.Warn("Storage: in-memory driver, data is lost on restart")
		return &storage{
			availability: memory.NewAvailabilityRepository(),
			appointments: memory.NewAppointmentRepository(),
			close:        func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// buildNotifier создает отправителя писем по notification.driver.
// Для none возвращает nil: запись создается без уведомления.
func buildNotifier(cfg config.NotificationConfig, log *logger.Logger) (submitBooking.Notifier, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case config.NotificationNone, "":
		log.Info("Notification: disabled")
		return nil, noop, nil

	case config.NotificationHTTP:
		log.Info("Notification: HTTP at %s", cfg.HTTP.URL)
		return notification.NewClient(cfg.HTTP.URL, cfg.HTTP.TimeoutDuration(), log), noop, nil

	case config.NotificationSMTP:
		sender, err := notification.NewSMTPSender(notification.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			SSL:      cfg.SMTP.SSL,
			Timeout:  time.Duration(cfg.SMTP.Timeout) * time.Second,
		}, log)
		if err != nil {
			return nil, noop, err
		}
		log.Info("Notification: SMTP %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
		return sender, noop, nil

	case config.NotificationAMQP:
		conn, err := amqp.Dial(cfg.AMQP.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("amqp dial: %w", err)
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, noop, fmt.Errorf("amqp channel: %w", err)
		}
		publisher, err := notification.NewQueuePublisher(ch, cfg.AMQP.Queue, log)
		if err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, noop, err
		}
		log.Info("Notification: AMQP queue %s", cfg.AMQP.Queue)
		return publisher, func() {
			if err := errors.Join(ch.Close(), conn.Close()); err != nil {
				log.Warn("Failed to close AMQP connection: %v", err)
			}
		}, nil

	default:
		return nil, noop, fmt.Errorf("unknown notification driver %q", cfg.Driver)
	}
}
