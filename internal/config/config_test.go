package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
server:
  host: "0.0.0.0"
  port: 3000
database:
  path: "data/members.db"
session:
  secret: "0123456789abcdef0123456789abcdef"
`

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.GetServerAddress())
	assert.Equal(t, "data/members.db", cfg.Database.Path)
	assert.False(t, cfg.EmailEnabled())

	// Defaults filled in during validation.
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "secretary@bcsme.org", cfg.Admin.Email)
	assert.Equal(t, 8*60, cfg.Session.ExpiryMinutes)
	assert.Equal(t, "0 0 7 * * *", cfg.Scheduler.PendingReviewDigest)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/override.db")
	t.Setenv("ADMIN_USERNAME", "secretary")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, "secretary", cfg.Admin.Username)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 3000},
			Database: DatabaseConfig{Path: "data/members.db"},
			Session:  SessionConfig{Secret: "0123456789abcdef0123456789abcdef"},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("BadPort", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("MissingDatabasePath", func(t *testing.T) {
		cfg := base()
		cfg.Database.Path = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("ShortSessionSecret", func(t *testing.T) {
		cfg := base()
		cfg.Session.Secret = "too-short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("SMTPWithoutFrom", func(t *testing.T) {
		cfg := base()
		cfg.SMTP.Host = "smtp.example.com"
		cfg.SMTP.Port = 587
		assert.Error(t, cfg.Validate())
	})
}
