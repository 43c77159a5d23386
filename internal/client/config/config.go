package config

import (
	"time"

	"github.com/dmitrijs2005/quickserve/internal/common"
)

// Config holds runtime settings for the QuickServe CLI.
type Config struct {
	APIBaseURL    string
	SessionDBPath string
	// SessionKey seals the stored session when set.
	SessionKey     string
	RequestTimeout time.Duration

	LogLevel  string
	LogFormat string

	MetricsAddr  string
	OTLPEndpoint string
	OTLPInsecure bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.SessionDBPath = ".quickserve/session.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.OTLPInsecure = true
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, JSON (if present) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
