package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

// ConfigPathEnv переменная окружения с путём к конфигу
const ConfigPathEnv = "CONFIG_PATH"

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
	Shop          ShopConfig          `toml:"shop"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotificationsConfig адреса внешних получателей записи.
// Пустой URL отключает соответствующий канал.
type NotificationsConfig struct {
	SpreadsheetURL string `toml:"spreadsheet_url"`
	WebhookURL     string `toml:"webhook_url"`
	Timeout        int    `toml:"timeout"` // секунды
}

// ShopConfig настройки салона
type ShopConfig struct {
	Timezone string `toml:"timezone"`
	// Capacity переопределяет число мест в час из каталога (0 - значение каталога)
	Capacity int `toml:"capacity"`
	// SubmittedDisplayDelay через сколько секунд отправленная сессия сбрасывается
	SubmittedDisplayDelay int `toml:"submitted_display_delay"`
	// SessionTTL через сколько минут бездействия сессия выбора удаляется
	SessionTTL int `toml:"session_ttl"`
}

// Location возвращает часовой пояс салона
func (c ShopConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из файла path (или из CONFIG_PATH, если переменная задана)
func Load(path string) (*Config, error) {
	if env := os.Getenv(ConfigPathEnv); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "grooming",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc_grooming_service",
		},
		Notifications: NotificationsConfig{
			Timeout: 10,
		},
		Shop: ShopConfig{
			Timezone:              "America/Sao_Paulo",
			SubmittedDisplayDelay: 3,
			SessionTTL:            60,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Notifications.Timeout <= 0 {
		return fmt.Errorf("%w: notifications.timeout must be positive", ErrInvalidConfig)
	}
	if c.Shop.Capacity < 0 {
		return fmt.Errorf("%w: shop.capacity must not be negative", ErrInvalidConfig)
	}
	if c.Shop.SubmittedDisplayDelay < 0 {
		return fmt.Errorf("%w: shop.submitted_display_delay must not be negative", ErrInvalidConfig)
	}
	if c.Shop.SessionTTL <= 0 {
		return fmt.Errorf("%w: shop.session_ttl must be positive", ErrInvalidConfig)
	}
	if _, err := c.Shop.Location(); err != nil {
		return fmt.Errorf("%w: shop.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}
