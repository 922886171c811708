package config

import (
	"fmt"
	"time"

	"github.com/Sathvik1533/Skillsync/internal/dbx"
	"github.com/Sathvik1533/Skillsync/internal/flagx"
	"github.com/Sathvik1533/Skillsync/internal/logging"
)

// Config holds runtime settings for the SkillSync client.
type Config struct {
	DatabaseDriver string        `env:"DB_DRIVER"`
	DatabaseDSN    string        `env:"DB_DSN"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
	SessionTTL     time.Duration `env:"SESSION_TTL"`
	RecentLimit    int           `env:"RECENT_LIMIT"`
	BackupDir      string        `env:"BACKUP_DIR"`
	BackupSchedule string        `env:"BACKUP_SCHEDULE"`
	S3             S3Config      `envPrefix:"S3_"`
}

// S3Config configures the optional S3 backup target.
type S3Config struct {
	Bucket       string `env:"BUCKET"`
	Region       string `env:"REGION"`
	BaseEndpoint string `env:"BASE_ENDPOINT"`
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
}

// Enabled reports whether S3 backups are configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "skillsync.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.SessionTTL = 0
	c.RecentLimit = 6
	c.BackupDir = "backups"
	c.BackupSchedule = ""
	c.S3 = S3Config{Region: "us-east-1"}
}

// Validate rejects settings the client cannot start with.
func (c *Config) Validate() error {
	if _, err := dbx.ParseDialect(c.DatabaseDriver); err != nil {
		return err
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("session ttl must not be negative")
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("recent limit must not be negative")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then overlays the JSON file, the
// environment and finally the command-line flags in args (usually
// os.Args[1:]). Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	files := flagx.ConfigFileFlags(args)

	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(files.Env); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, files.JSON); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
