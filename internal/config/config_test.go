package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "campaign",
			Database:     "campaign",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected string
	}{
		{
			name:     "empty host",
			mutate:   func(c *Config) { c.Database.Host = "" },
			expected: "database.host must not be empty",
		},
		{
			name:     "bad database port",
			mutate:   func(c *Config) { c.Database.Port = 0 },
			expected: "database.port must be between 1 and 65535",
		},
		{
			name:     "bad ssl mode",
			mutate:   func(c *Config) { c.Database.SSLMode = "maybe" },
			expected: "database.ssl_mode must be one of",
		},
		{
			name:     "bad server port",
			mutate:   func(c *Config) { c.Server.Port = 70000 },
			expected: "server.port must be between 1 and 65535",
		},
		{
			name:     "cors without origins",
			mutate:   func(c *Config) { c.Server.CORSEnabled = true },
			expected: "server.cors_allowed_origins must not be empty",
		},
		{
			name:     "bad log level",
			mutate:   func(c *Config) { c.Logging.Level = "verbose" },
			expected: "logging.level must be one of",
		},
		{
			name:     "bad log format",
			mutate:   func(c *Config) { c.Logging.Format = "xml" },
			expected: "logging.format must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "campaign",
		Database: "king_phisher",
		SSLMode:  "require",
	}
	assert.Equal(t, "host=db.internal port=5432 user=campaign dbname=king_phisher sslmode=require", db.DSN())

	db.Password = "hunter2"
	assert.Contains(t, db.DSN(), "password=hunter2")
}
