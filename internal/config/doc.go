// Package config loads runtime configuration for the SkillSync client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with SKILLSYNC_ (see parseEnv). A .env
//     file (./.env, or the one named by -e / -env-file) is loaded into the
//     environment first; it never overrides variables that are already set.
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-driver string  database driver: sqlite (default) or pgx
//	-d string       database DSN (SQLite file path or PostgreSQL URL)
//	-l string       log level: debug, info, warn, error
//	-t int          session lifetime in seconds (0 = until logout)
//	-b string       directory for local skill backups
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "12h" or integer
// nanoseconds:
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "skillsync.db",
//	  "log_level": "info",
//	  "session_ttl": "12h",
//	  "backup_schedule": "@daily",
//	  "s3": {"bucket": "skills", "base_endpoint": "http://localhost:9000"}
//	}
//
// Environment
//
//	SKILLSYNC_DB_DRIVER, SKILLSYNC_DB_DSN, SKILLSYNC_LOG_LEVEL,
//	SKILLSYNC_LOG_FORMAT, SKILLSYNC_SESSION_TTL, SKILLSYNC_RECENT_LIMIT,
//	SKILLSYNC_BACKUP_DIR, SKILLSYNC_BACKUP_SCHEDULE, SKILLSYNC_S3_BUCKET,
//	SKILLSYNC_S3_REGION, SKILLSYNC_S3_BASE_ENDPOINT, SKILLSYNC_S3_ACCESS_KEY,
//	SKILLSYNC_S3_SECRET_KEY
package config
