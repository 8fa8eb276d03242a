package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация веб-приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Backend  BackendConfig  `toml:"backend"`
	Images   ImagesConfig   `toml:"images"`
	Session  SessionConfig  `toml:"session"`
	Site     SiteConfig     `toml:"site"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig адрес API отеля, таймаут в секундах
type BackendConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"`
}

// ImagesConfig параметры сборки URL изображений
type ImagesConfig struct {
	CloudBaseURL string `toml:"cloud_base_url"`
	CloudName    string `toml:"cloud_name"`
}

// SessionConfig параметры cookie сессии сотрудника
type SessionConfig struct {
	CookieName   string `toml:"cookie_name"`
	TTLHours     int    `toml:"ttl_hours"`
	SecureCookie bool   `toml:"secure_cookie"`
}

type SiteConfig struct {
	Name           string `toml:"name"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// DatabaseConfig журнал отправок бронирований (опционально)
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	URL             string `toml:"url"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения к PostgreSQL. Явный url имеет приоритет.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Переменные окружения, переопределяющие файл конфигурации
const (
	EnvBackendURL    = "HOTEL_API_BASE_URL"
	EnvCloudName     = "CLOUDINARY_CLOUD_NAME"
	EnvHTTPPort      = "HTTP_PORT"
	EnvDatabaseDSN   = "DATABASE_DSN"
	EnvSecureCookie  = "SESSION_SECURE_COOKIE"
	EnvLogLevel      = "LOG_LEVEL"
	EnvMetricsEnable = "METRICS_ENABLED"
)

// Load читает .env (если есть), файл конфигурации и применяет переопределения из окружения.
// Отсутствующий файл конфигурации не является ошибкой.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "text"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "sorftinn-web"
	}

	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://127.0.0.1:8000"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 10
	}

	if c.Images.CloudBaseURL == "" {
		c.Images.CloudBaseURL = "https://res.cloudinary.com"
	}
	if c.Images.CloudName == "" {
		c.Images.CloudName = "devo42kc9"
	}

	if c.Session.CookieName == "" {
		c.Session.CookieName = "authToken"
	}
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 24
	}

	if c.Site.Name == "" {
		c.Site.Name = "SorftInn"
	}
	if c.Site.CurrencySymbol == "" {
		c.Site.CurrencySymbol = "₦"
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBackendURL); ok && v != "" {
		c.Backend.BaseURL = v
	}
	if v, ok := lookup(EnvCloudName); ok && v != "" {
		c.Images.CloudName = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logs.Level = v
	}
	if v, ok := lookup(EnvDatabaseDSN); ok && v != "" {
		c.Database.URL = v
		c.Database.Enabled = true
	}
	if v, ok := lookup(EnvHTTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvHTTPPort, v, err)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := lookup(EnvSecureCookie); ok && v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvSecureCookie, v, err)
		}
		c.Session.SecureCookie = secure
	}
	if v, ok := lookup(EnvMetricsEnable); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvMetricsEnable, v, err)
		}
		c.Metrics.Enabled = enabled
	}
	return nil
}

// Validate проверяет значения, без которых приложение не запустится
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if err := validateBaseURL("backend.base_url", c.Backend.BaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("images.cloud_base_url", c.Images.CloudBaseURL); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/': %q", c.Metrics.Path)
	}
	if c.Backend.Timeout < 0 || c.Session.TTLHours < 0 {
		return errors.New("backend.timeout and session.ttl_hours must not be negative")
	}
	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL: %q", name, raw)
	}
	return nil
}
