package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/AppointEase/internal/domain"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig    `toml:"server"`
	Logs     LogsConfig      `toml:"logs"`
	Metrics  MetricsConfig   `toml:"metrics"`
	Storage  StorageConfig   `toml:"storage"`
	Services []ServiceConfig `toml:"services"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
// Пустой file - только stdout
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор реализации журнала бронирований
// memory - журнал в памяти, sqlite - SQL журнал в in-memory базе SQLite
type StorageConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// ServiceConfig услуга каталога
type ServiceConfig struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	Description     string  `toml:"description"`
	DurationMinutes int     `toml:"duration_minutes"`
	Price           float64 `toml:"price"`
	Category        string  `toml:"category"`
	Image           string  `toml:"image"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "appointease"
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}
	if c.Storage.Driver == StorageSQLite && c.Storage.DSN == "" {
		c.Storage.DSN = "file:appointease?mode=memory&cache=shared"
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	timeouts := map[string]int{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	}
	for key, value := range timeouts {
		if value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, key)
		}
	}

	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageSQLite:
		if !strings.Contains(c.Storage.DSN, "mode=memory") && c.Storage.DSN != ":memory:" {
			return fmt.Errorf("%w: storage.dsn must point to an in-memory database", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	seen := make(map[string]struct{}, len(c.Services))
	for i, svc := range c.Services {
		if strings.TrimSpace(svc.ID) == "" {
			return fmt.Errorf("%w: services[%d].id is empty", ErrInvalidConfig, i)
		}
		if svc.DurationMinutes <= 0 || svc.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: services[%d].duration_minutes must be in 1..%d", ErrInvalidConfig, i, domain.MaxDurationMinutes)
		}
		if _, ok := seen[svc.ID]; ok {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidConfig, svc.ID)
		}
		seen[svc.ID] = struct{}{}
	}

	return nil
}

// DomainServices возвращает услуги каталога из конфигурации
// nil, если услуги не заданы
func (c *Config) DomainServices() []domain.Service {
	if len(c.Services) == 0 {
		return nil
	}

	services := make([]domain.Service, len(c.Services))
	for i, svc := range c.Services {
		services[i] = domain.Service{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			Category:        svc.Category,
			Image:           svc.Image,
		}
	}
	return services
}
