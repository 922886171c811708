package config

import (
	"flag"
	"io"
	"time"

	"github.com/Sathvik1533/Skillsync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-driver string  database driver
//	-d string       database DSN
//	-l string       log level
//	-t int          session lifetime (in seconds)
//	-b string       local backup directory
//
// args is filtered with flagx.FilterArgs first, so flags owned by other
// stages (-c, -e) do not cause parse errors.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-driver", "-d", "-l", "-t", "-b"})

	fs := flag.NewFlagSet("skillsync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDriver, "driver", cfg.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Seconds()), "session lifetime (in seconds, 0 = until logout)")
	fs.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "local backup directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTTL = time.Duration(*sessionTTL) * time.Second
		}
	})
	return nil
}
