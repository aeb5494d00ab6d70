package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap returns a lookup over the given variables only.
func envMap(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Minute},
		Database: DatabaseConfig{
			URL:            "postgres://localhost/books",
			MaxConns:       5,
			ConnectTimeout: time.Second,
			WriteTimeout:   time.Second,
		},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100, Burst: 20},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"DATABASE_URL": "postgres://localhost/books",
	}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Database.MaxConns)
	assert.Equal(t, 0, cfg.Database.MinConns)
	assert.Equal(t, 10*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 100, cfg.Rate.RequestsPerMinute)
	assert.True(t, cfg.Security.EnableCSP)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"DATABASE_URL": "postgres://localhost/books",
		"SERVER_PORT":  "9090",
		"DB_MAX_CONNS": "3",
		"LOG_LEVEL":    "debug",
		"LOG_FORMAT":   "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Database.MaxConns)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_AltEnvVar(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"DB_URL": "postgres://localhost/alt",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/alt", cfg.Database.URL)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := LoadFrom(envMap(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_Process(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/process")
	t.Setenv("SERVER_PORT", "8181")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/process", cfg.Database.URL)
	assert.Equal(t, 8181, cfg.Server.Port)
}

func TestLoad_Duration(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"DATABASE_URL":        "postgres://localhost/books",
		"SERVER_READ_TIMEOUT": "45s",
		"DB_WRITE_TIMEOUT":    "1m30s",
	}))
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 90*time.Second, cfg.Database.WriteTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad integer", "SERVER_PORT", "eighty"},
		{"bad duration", "DB_WRITE_TIMEOUT", "soon"},
		{"bad boolean", "RATE_LIMIT_ENABLED", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(envMap(map[string]string{
				"DATABASE_URL": "postgres://localhost/books",
				tt.key:         tt.val,
			}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"DATABASE_URL":         "postgres://localhost/books",
		"TRUSTED_PROXIES":      "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}, cfg.Security.TrustedProxies)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"invalid port", func(c *Config) { c.Server.Port = 99999 }, "SERVER_PORT"},
		{"zero max conns", func(c *Config) { c.Database.MaxConns = 0 }, "DB_MAX_CONNS must be positive"},
		{"min above max", func(c *Config) { c.Database.MinConns = 6 }, "DB_MAX_CONNS (5) must be >= DB_MIN_CONNS (6)"},
		{"zero write timeout", func(c *Config) { c.Database.WriteTimeout = 0 }, "DB_WRITE_TIMEOUT"},
		{"rate without limit", func(c *Config) { c.Rate.RequestsPerMinute = 0 }, "RATE_LIMIT_REQUESTS_PER_MINUTE"},
		{"rate disabled ignores limit", func(c *Config) { c.Rate = RateLimitConfig{} }, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
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

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URL = ""
	cfg.Server.Port = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")
	assert.Contains(t, err.Error(), "SERVER_PORT")
}

func TestString_MasksURL(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URL = "postgres://user:secret@db/books"

	s := cfg.String()
	assert.NotContains(t, s, "secret")
	assert.Contains(t, s, "[MASKED]")
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9090, ":9090"},
		{"::1", 80, "[::1]:80"},
	}

	for _, tt := range tests {
		c := ServerConfig{Host: tt.host, Port: tt.port}
		assert.Equal(t, tt.want, c.Addr())
	}
}
