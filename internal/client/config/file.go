package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/flagx"
	"github.com/dmitrijs2005/passvault/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding config files.
type FileConfig struct {
	DBDriver       string         `json:"db_driver" yaml:"db_driver"`
	DSN            string         `json:"dsn" yaml:"dsn"`
	LogBackend     string         `json:"log_backend" yaml:"log_backend"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFile        string         `json:"log_file" yaml:"log_file"`
	Cipher         string         `json:"cipher" yaml:"cipher"`
	TickInterval   timex.Duration `json:"tick_interval" yaml:"tick_interval"`
	NoticeTTL      timex.Duration `json:"notice_ttl" yaml:"notice_ttl"`
	ErrorTTL       timex.Duration `json:"error_ttl" yaml:"error_ttl"`
	ViewportHeight int            `json:"viewport_height" yaml:"viewport_height"`
}

func decodeFile(path string, data []byte, fc *FileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

// parseFile overlays Config with the values set in the file named by -c or
// -config. It panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if err := decodeFile(path, data, &fc); err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&cfg.DBDriver, fc.DBDriver)
	setString(&cfg.DSN, fc.DSN)
	setString(&cfg.LogBackend, fc.LogBackend)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.Cipher, fc.Cipher)

	if fc.TickInterval.Duration != 0 {
		cfg.TickInterval = fc.TickInterval.Duration
	}
	if fc.NoticeTTL.Duration != 0 {
		cfg.NoticeTTL = fc.NoticeTTL.Duration
	}
	if fc.ErrorTTL.Duration != 0 {
		cfg.ErrorTTL = fc.ErrorTTL.Duration
	}
	if fc.ViewportHeight != 0 {
		cfg.ViewportHeight = fc.ViewportHeight
	}
}
