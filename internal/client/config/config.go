package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/cryptox"
	"github.com/dmitrijs2005/passvault/internal/logging"
)

// Config holds runtime settings for the passvault client.
type Config struct {
	DBDriver string
	DSN      string

	LogBackend string
	LogLevel   string
	LogFile    string

	// Cipher is the AEAD suite recorded for users registered from now on.
	Cipher string

	// TickInterval drives re-rendering so timed notices expire.
	TickInterval time.Duration
	NoticeTTL    time.Duration
	ErrorTTL     time.Duration

	// ViewportHeight is the number of list lines shown before the terminal
	// reports its real size.
	ViewportHeight int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBDriver = "sqlite"
	c.DSN = "passvault.db"
	c.LogBackend = logging.BackendSlog
	c.LogLevel = "info"
	c.LogFile = "passvault.log"
	c.Cipher = string(cryptox.SuiteAES256GCM)
	c.TickInterval = 200 * time.Millisecond
	c.NoticeTTL = 2 * time.Second
	c.ErrorTTL = 3 * time.Second
	c.ViewportHeight = 10
}

// Validate reports the first setting the client cannot run with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "pgx":
	default:
		return fmt.Errorf("%w: %q", common.ErrUnsupportedDriver, c.DBDriver)
	}
	if c.DSN == "" {
		return fmt.Errorf("empty dsn")
	}
	if _, err := cryptox.ParseSuite(c.Cipher); err != nil {
		return fmt.Errorf("%w: %q", common.ErrUnsupportedCipher, c.Cipher)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap, logging.BackendZerolog:
	default:
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	if c.TickInterval <= 0 || c.NoticeTTL <= 0 || c.ErrorTTL <= 0 {
		return fmt.Errorf("durations must be positive")
	}
	if c.ViewportHeight < 1 {
		return fmt.Errorf("viewport height must be at least 1, got %d", c.ViewportHeight)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones. Invalid settings panic.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
