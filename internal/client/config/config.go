package config

import (
	"time"

	"github.com/dmitrijs2005/gophchat/internal/logging"
)

// Config holds runtime settings for the chat CLI.
//
// Fields:
//   - APIBaseURL: base address every endpoint path is appended to, e.g.
//     "http://127.0.0.1:8080". Not validated; a malformed value surfaces on
//     the first request.
//   - RequestTimeout: per-request timeout of the HTTP transport.
//   - RequestsPerSecond: outbound request budget; 0 disables throttling.
//   - SessionDBPath: SQLite file that keeps the session token between runs.
//   - LogLevel / LogBackend: see logging.New.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	SessionDBPath     string
	LogLevel          string
	LogBackend        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.RequestsPerSecond = 0
	c.SessionDBPath = "data/session.db"
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
