package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Sathvik1533/Skillsync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations use timex.Duration so they can be written as "12h".
type JsonConfig struct {
	DatabaseDriver string         `json:"database_driver"`
	DatabaseDSN    string         `json:"database_dsn"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
	SessionTTL     timex.Duration `json:"session_ttl"`
	RecentLimit    int            `json:"recent_limit"`
	BackupDir      string         `json:"backup_dir"`
	BackupSchedule string         `json:"backup_schedule"`
	S3             struct {
		Bucket       string `json:"bucket"`
		Region       string `json:"region"`
		BaseEndpoint string `json:"base_endpoint"`
		AccessKey    string `json:"access_key"`
		SecretKey    string `json:"secret_key"`
	} `json:"s3"`
}

// parseJson overlays cfg with the non-empty values of the JSON file at path.
// An empty path is a no-op.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.DatabaseDriver, jc.DatabaseDriver)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
	if jc.RecentLimit != 0 {
		cfg.RecentLimit = jc.RecentLimit
	}
	setString(&cfg.BackupDir, jc.BackupDir)
	setString(&cfg.BackupSchedule, jc.BackupSchedule)
	setString(&cfg.S3.Bucket, jc.S3.Bucket)
	setString(&cfg.S3.Region, jc.S3.Region)
	setString(&cfg.S3.BaseEndpoint, jc.S3.BaseEndpoint)
	setString(&cfg.S3.AccessKey, jc.S3.AccessKey)
	setString(&cfg.S3.SecretKey, jc.S3.SecretKey)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
