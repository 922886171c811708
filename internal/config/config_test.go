package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "skillsync.db", c.DatabaseDSN)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 6, c.RecentLimit)
	assert.Zero(t, c.SessionTTL)
	assert.False(t, c.S3.Enabled())
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"dsn", func(c *Config) { c.DatabaseDSN = "" }},
		{"level", func(c *Config) { c.LogLevel = "loud" }},
		{"format", func(c *Config) { c.LogFormat = "xml" }},
		{"ttl", func(c *Config) { c.SessionTTL = -time.Second }},
		{"recent", func(c *Config) { c.RecentLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	jsonPath := writeFile(t, "config.json", `{
		"database_dsn": "from-json.db",
		"log_level": "debug",
		"session_ttl": "2h",
		"backup_schedule": "@daily",
		"s3": {"bucket": "skills", "base_endpoint": "http://localhost:9000"}
	}`)

	t.Setenv("SKILLSYNC_LOG_LEVEL", "warn")
	t.Setenv("SKILLSYNC_RECENT_LIMIT", "3")
	t.Setenv("SKILLSYNC_S3_ACCESS_KEY", "minio")

	cfg, err := LoadConfig([]string{"-c", jsonPath, "-b", "/tmp/bk"})
	require.NoError(t, err)

	want := defaults()
	want.DatabaseDSN = "from-json.db"
	want.LogLevel = "warn"
	want.SessionTTL = 2 * time.Hour
	want.RecentLimit = 3
	want.BackupDir = "/tmp/bk"
	want.BackupSchedule = "@daily"
	want.S3.Bucket = "skills"
	want.S3.BaseEndpoint = "http://localhost:9000"
	want.S3.AccessKey = "minio"

	assert.Empty(t, cmp.Diff(want, cfg))
	assert.True(t, cfg.S3.Enabled())
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	t.Setenv("SKILLSYNC_DB_DSN", "env.db")
	t.Setenv("SKILLSYNC_SESSION_TTL", "30m")

	cfg, err := LoadConfig([]string{"-d", "flag.db", "-driver", "pgx", "-l", "error"})
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
	assert.Equal(t, "pgx", cfg.DatabaseDriver)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL, "untouched when -t is absent")
}

func TestLoadConfig_DotEnv(t *testing.T) {
	const key = "SKILLSYNC_BACKUP_DIR"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	envPath := writeFile(t, "test.env", key+"=from-dotenv\n")

	cfg, err := LoadConfig([]string{"-e", envPath})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.BackupDir)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing json", func(t *testing.T) {
		_, err := LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("bad json", func(t *testing.T) {
		p := writeFile(t, "bad.json", "{")
		_, err := LoadConfig([]string{"-c", p})
		assert.ErrorContains(t, err, "parse config file")
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := LoadConfig([]string{"-e", filepath.Join(t.TempDir(), "nope.env")})
		assert.Error(t, err)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("SKILLSYNC_RECENT_LIMIT", "many")
		_, err := LoadConfig(nil)
		assert.ErrorContains(t, err, "parse environment")
	})

	t.Run("invalid result", func(t *testing.T) {
		_, err := LoadConfig([]string{"-driver", "oracle"})
		assert.ErrorContains(t, err, "invalid config")
	})
}
