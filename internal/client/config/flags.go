package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/passvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// os.Args is filtered with flagx.FilterArgs so the -c/-config flag handled
// by parseFile does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-driver", "-d", "-l", "-cipher", "-log-level", "-log-backend"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBDriver, "driver", cfg.DBDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&cfg.DSN, "d", cfg.DSN, "data source name")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.Cipher, "cipher", cfg.Cipher, "AEAD suite for new users")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "log backend (slog, zap, zerolog)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
