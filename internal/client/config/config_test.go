package config

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, rest, err := Load("livequery", []string{"status"}, nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, []string{"status"}, rest)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, DefaultReconnectDelay, cfg.ReconnectDelay)
	assert.Equal(t, DefaultConfirmTimeout, cfg.ConfirmTimeout)
	assert.Empty(t, cfg.Passphrase)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvAndFlags(t *testing.T) {
	getenv := env(map[string]string{
		EnvServer:     "https://env.example.com/",
		EnvDB:         "/tmp/env.db",
		EnvPassphrase: "from-env-passphrase",
	})

	cfg, rest, err := Load("livequery", []string{
		"--db", "/tmp/flag.db",
		"--confirm-timeout", "2s",
		"watch", `{"topic":"a"}`,
	}, getenv, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/flag.db", cfg.DBPath, "flag wins over env")
	assert.Equal(t, 2*time.Second, cfg.ConfirmTimeout)
	assert.Equal(t, "from-env-passphrase", cfg.Passphrase)
	assert.Equal(t, []string{"watch", `{"topic":"a"}`}, rest)
}

func TestLoad_BadFlag(t *testing.T) {
	_, _, err := Load("livequery", []string{"--reconnect-delay", "soon"}, nil, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse flags")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, _, err := Load("livequery", nil, nil, io.Discard)
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		mutate  func(c *Config)
		name    string
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad scheme", mutate: func(c *Config) { c.ServerURL = "ftp://host" }, wantErr: "http or https"},
		{name: "no host", mutate: func(c *Config) { c.ServerURL = "http://" }, wantErr: "must include a host"},
		{name: "bad socket scheme", mutate: func(c *Config) { c.SocketURL = "http://host/ws" }, wantErr: "ws or wss"},
		{name: "empty db", mutate: func(c *Config) { c.DBPath = "" }, wantErr: "database path"},
		{name: "zero timeout", mutate: func(c *Config) { c.ConfirmTimeout = 0 }, wantErr: "timeouts must be positive"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ChannelURL(t *testing.T) {
	tests := []struct {
		name   string
		server string
		socket string
		want   string
	}{
		{name: "http", server: "http://localhost:8080", want: "ws://localhost:8080/query_socket"},
		{name: "https with path", server: "https://example.com/api", want: "wss://example.com/api/query_socket"},
		{name: "explicit socket", server: "https://example.com", socket: "wss://push.example.com/s", want: "wss://push.example.com/s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ServerURL: tt.server, SocketURL: tt.socket}
			got, err := cfg.ChannelURL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}
