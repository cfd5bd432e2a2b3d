// Package config загружает конфигурацию сервиса: значения по умолчанию, затем TOML файл,
// затем переменные окружения с префиксом SMC_.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "SMC_"

// Драйверы хранилища
const (
	StorageHTTP     = "http"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Драйверы уведомлений
const (
	NotificationHTTP = "http"
	NotificationSMTP = "smtp"
	NotificationAMQP = "amqp"
	NotificationNone = "none"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server" envPrefix:"SERVER_"`
	Logs         LogsConfig         `toml:"logs" envPrefix:"LOGS_"`
	Metrics      MetricsConfig      `toml:"metrics" envPrefix:"METRICS_"`
	Storage      StorageConfig      `toml:"storage" envPrefix:"STORAGE_"`
	DataStore    ClientConfig       `toml:"datastore" envPrefix:"DATASTORE_"`
	Database     DatabaseConfig     `toml:"database" envPrefix:"DATABASE_"`
	UserService  ClientConfig       `toml:"userservice" envPrefix:"USERSERVICE_"`
	Notification NotificationConfig `toml:"notification" envPrefix:"NOTIFICATION_"`
	Scheduling   SchedulingConfig   `toml:"scheduling" envPrefix:"SCHEDULING_"`
}

// ServerConfig параметры HTTP сервера. Таймауты в секундах.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level" env:"LEVEL"`
	File  string `toml:"file" env:"FILE"`
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME"`
}

// StorageConfig выбор хранилища записей
type StorageConfig struct {
	Driver string `toml:"driver" env:"DRIVER"`
}

// ClientConfig параметры HTTP клиента внешнего сервиса. Timeout в секундах.
type ClientConfig struct {
	URL     string `toml:"url" env:"URL"`
	Timeout int    `toml:"timeout" env:"TIMEOUT"`
}

// TimeoutDuration таймаут клиента
func (c ClientConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// DatabaseConfig параметры PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"HOST"`
	Port            int    `toml:"port" env:"PORT"`
	User            string `toml:"user" env:"USER"`
	Password        string `toml:"password" env:"PASSWORD"`
	DBName          string `toml:"dbname" env:"DBNAME"`
	SSLMode         string `toml:"sslmode" env:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// NotificationConfig параметры уведомлений клиента
type NotificationConfig struct {
	Driver string       `toml:"driver" env:"DRIVER"`
	HTTP   ClientConfig `toml:"http" envPrefix:"HTTP_"`
	SMTP   SMTPConfig   `toml:"smtp" envPrefix:"SMTP_"`
	AMQP   AMQPConfig   `toml:"amqp" envPrefix:"AMQP_"`
}

// SMTPConfig параметры SMTP сервера
type SMTPConfig struct {
	Host     string `toml:"host" env:"HOST"`
	Port     int    `toml:"port" env:"PORT"`
	Username string `toml:"username" env:"USERNAME"`
	Password string `toml:"password" env:"PASSWORD"`
	From     string `toml:"from" env:"FROM"`
	SSL      bool   `toml:"ssl" env:"SSL"`
	Timeout  int    `toml:"timeout" env:"TIMEOUT"`
}

// AMQPConfig параметры RabbitMQ
type AMQPConfig struct {
	DSN   string `toml:"dsn" env:"DSN"`
	Queue string `toml:"queue" env:"QUEUE"`
}

// SchedulingConfig параметры расписания
type SchedulingConfig struct {
	SlotStart       string `toml:"slot_start" env:"SLOT_START"`
	SlotEnd         string `toml:"slot_end" env:"SLOT_END"`
	SlotStepMinutes int    `toml:"slot_step_minutes" env:"SLOT_STEP_MINUTES"`
	// Явный список слотов. Если задан, SlotStart/SlotEnd/SlotStepMinutes не используются.
	Slots          []string `toml:"slots" env:"SLOTS" envSeparator:","`
	HorizonDays    int      `toml:"horizon_days" env:"HORIZON_DAYS"`
	MaxHorizonDays int      `toml:"max_horizon_days" env:"MAX_HORIZON_DAYS"`
}

// SlotList возвращает слоты дня по порядку
func (c SchedulingConfig) SlotList() ([]types.TimeString, error) {
	if len(c.Slots) > 0 {
		result := make([]types.TimeString, 0, len(c.Slots))
		for _, s := range c.Slots {
			slot, err := types.NewTimeStringFromString(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("slot %q: %w", s, err)
			}
			result = append(result, slot)
		}
		return result, nil
	}

	start, err := types.NewTimeStringFromString(c.SlotStart)
	if err != nil {
		return nil, fmt.Errorf("slot_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(c.SlotEnd)
	if err != nil {
		return nil, fmt.Errorf("slot_end: %w", err)
	}
	return calendar.GenerateSlots(start, end, c.SlotStepMinutes)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "schedule_service",
		},
		Storage: StorageConfig{
			Driver: StorageHTTP,
		},
		DataStore: ClientConfig{
			URL:     "http://localhost:8090",
			Timeout: 5,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "schedule",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		UserService: ClientConfig{
			URL:     "http://localhost:8081",
			Timeout: 5,
		},
		Notification: NotificationConfig{
			Driver: NotificationNone,
			HTTP:   ClientConfig{Timeout: 5},
			SMTP:   SMTPConfig{Port: 465, SSL: true, Timeout: 10},
			AMQP:   AMQPConfig{Queue: "email_queue"},
		},
		Scheduling: SchedulingConfig{
			SlotStart:       domain.DefaultSlotStart,
			SlotEnd:         domain.DefaultSlotEnd,
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
			HorizonDays:     domain.DefaultHorizonDays,
			MaxHorizonDays:  domain.MaxHorizonDays,
		},
	}
}

// Load читает конфигурацию. Отсутствующий файл не ошибка: используются значения
// по умолчанию и переменные окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}

	switch c.Storage.Driver {
	case StorageHTTP:
		if c.DataStore.URL == "" {
			errs = append(errs, errors.New("datastore.url is required for storage.driver=http"))
		}
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			errs = append(errs, errors.New("database.host and database.dbname are required for storage.driver=postgres"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	switch c.Notification.Driver {
	case NotificationHTTP:
		if c.Notification.HTTP.URL == "" {
			errs = append(errs, errors.New("notification.http.url is required for notification.driver=http"))
		}
	case NotificationSMTP:
		if c.Notification.SMTP.Host == "" {
			errs = append(errs, errors.New("notification.smtp.host is required for notification.driver=smtp"))
		}
	case NotificationAMQP:
		if c.Notification.AMQP.DSN == "" {
			errs = append(errs, errors.New("notification.amqp.dsn is required for notification.driver=amqp"))
		}
	case NotificationNone:
	default:
		errs = append(errs, fmt.Errorf("unknown notification.driver %q", c.Notification.Driver))
	}

	if c.UserService.URL == "" {
		errs = append(errs, errors.New("userservice.url is required"))
	}

	if c.Scheduling.HorizonDays <= 0 || c.Scheduling.HorizonDays > c.Scheduling.MaxHorizonDays {
		errs = append(errs, fmt.Errorf("scheduling.horizon_days must be in 1..%d", c.Scheduling.MaxHorizonDays))
	}
	if slots, err := c.Scheduling.SlotList(); err != nil {
		errs = append(errs, fmt.Errorf("scheduling: %w", err))
	} else if len(slots) == 0 {
		errs = append(errs, errors.New("scheduling: no slots configured"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
