// Package config собирает настройки CLI-клиента из флагов и переменных окружения.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/livequery/pkg/api"
)

// Переменные окружения. Флаг, заданный явно, имеет приоритет над переменной.
const (
	EnvServer     = "LIVEQUERY_SERVER"
	EnvSocketURL  = "LIVEQUERY_SOCKET_URL"
	EnvDB         = "LIVEQUERY_DB"
	EnvPassphrase = "LIVEQUERY_PASSPHRASE"
	EnvLogLevel   = "LIVEQUERY_LOG_LEVEL"
)

// Значения по умолчанию
const (
	DefaultServerURL      = "http://localhost:8080"
	DefaultDBPath         = "livequery-client.db"
	DefaultCallbackAddr   = "127.0.0.1:0"
	DefaultReconnectDelay = 5 * time.Second
	DefaultConfirmTimeout = 5 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Config настройки клиента
type Config struct {
	ServerURL      string
	SocketURL      string
	DBPath         string
	PassphraseFile string
	// Passphrase приходит только из окружения, флага для нее нет
	Passphrase     string
	CallbackAddr   string
	LogLevel       string
	ReconnectDelay time.Duration
	ConfirmTimeout time.Duration
	RequestTimeout time.Duration
	ShowVersion    bool
}

// Load разбирает глобальные флаги. Возвращает конфигурацию и оставшиеся
// аргументы (команду и ее параметры).
func Load(name string, args []string, getenv func(string) string, output io.Writer) (*Config, []string, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	cfg := &Config{
		ServerURL:      envOr(getenv, EnvServer, DefaultServerURL),
		SocketURL:      getenv(EnvSocketURL),
		DBPath:         envOr(getenv, EnvDB, DefaultDBPath),
		Passphrase:     getenv(EnvPassphrase),
		CallbackAddr:   DefaultCallbackAddr,
		LogLevel:       envOr(getenv, EnvLogLevel, "info"),
		ReconnectDelay: DefaultReconnectDelay,
		ConfirmTimeout: DefaultConfirmTimeout,
		RequestTimeout: DefaultRequestTimeout,
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL")
	fs.StringVar(&cfg.SocketURL, "socket", cfg.SocketURL, "Push channel URL (default: derived from --server)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local credential database")
	fs.StringVar(&cfg.PassphraseFile, "passphrase-file", "", "Path to file containing the credential store passphrase")
	fs.StringVar(&cfg.CallbackAddr, "callback", cfg.CallbackAddr, "Loopback address for the login redirect")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.DurationVar(&cfg.ReconnectDelay, "reconnect-delay", cfg.ReconnectDelay, "Delay between push channel reconnect attempts")
	fs.DurationVar(&cfg.ConfirmTimeout, "confirm-timeout", cfg.ConfirmTimeout, "How long a write waits for confirmation")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "HTTP request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	return cfg, fs.Args(), nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("server URL must include a host")
	}

	if c.SocketURL != "" {
		s, err := url.Parse(c.SocketURL)
		if err != nil {
			return fmt.Errorf("invalid socket URL: %w", err)
		}
		if s.Scheme != "ws" && s.Scheme != "wss" {
			return fmt.Errorf("socket URL must use ws or wss, got %q", s.Scheme)
		}
	}

	if c.DBPath == "" {
		return errors.New("database path cannot be empty")
	}
	if c.ReconnectDelay <= 0 || c.ConfirmTimeout <= 0 || c.RequestTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// ChannelURL возвращает адрес push-канала
func (c *Config) ChannelURL() (string, error) {
	if c.SocketURL != "" {
		return c.SocketURL, nil
	}

	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("server URL must use http or https, got %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + api.PathQuerySocket
	return u.String(), nil
}

// Level возвращает уровень логирования
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
