// Package config loads runtime configuration for the passvault terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded with yaml.v3, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-driver string       database driver: sqlite or pgx
//	-d string            data source name (SQLite file path or PostgreSQL URL)
//	-l string            log file path
//	-cipher string       AEAD suite for new users: aes-256-gcm or chacha20-poly1305
//	-log-level string    debug, info, warn or error
//	-log-backend string  slog, zap or zerolog
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "200ms" or
// integer nanoseconds:
//
//	{
//	  "db_driver": "sqlite",
//	  "dsn": "~/.passvault/vault.db",
//	  "log_file": "passvault.log",
//	  "cipher": "chacha20-poly1305",
//	  "notice_ttl": "2s"
//	}
//
// Only keys present in the file override the defaults.
package config
