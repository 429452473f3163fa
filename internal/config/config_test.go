package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			DBName:  "mir",
			SSLMode: "disable",
		},
		Auth: AuthConfig{
			JWTSecret:       "0123456789abcdef0123456789abcdef",
			SessionTTLHours: 24,
			CookieName:      "mir_session",
		},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())

	cfg = validConfig()
	cfg.Database.Host = ""
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Auth.JWTSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Auth.SessionTTLHours = 0
	assert.Error(t, cfg.Validate())
}

func TestDSNHelpers(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password= dbname=mir sslmode=disable",
		cfg.Database.GetDSN(),
	)
	assert.Equal(t,
		"postgres://postgres:@localhost:5432/mir?sslmode=disable",
		cfg.Database.GetURL(),
	)
}
