package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
	"github.com/dmitrijs2005/gophchat/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO decoded from a config file. Pointer fields tell
// "absent" apart from zero values so the file only overrides what it names.
type FileConfig struct {
	APIBaseURL        *string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout    *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RequestsPerSecond *float64        `json:"requests_per_second" yaml:"requests_per_second"`
	SessionDBPath     *string         `json:"session_db_path" yaml:"session_db_path"`
	LogLevel          *string         `json:"log_level" yaml:"log_level"`
	LogBackend        *string         `json:"log_backend" yaml:"log_backend"`
}

// parseFile overlays cfg with values from the file named by -c/-config.
// Without the flag it does nothing. Read or decode errors panic, like the
// flag loader.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *fc.RequestsPerSecond
	}
	if fc.SessionDBPath != nil {
		cfg.SessionDBPath = *fc.SessionDBPath
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogBackend != nil {
		cfg.LogBackend = *fc.LogBackend
	}
}
