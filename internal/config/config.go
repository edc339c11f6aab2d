package config

import "time"

// Config holds runtime settings for the GophBank CLI.
type Config struct {
	DatabaseDriver    string
	DatabaseDSN       string
	SessionSecret     string
	SessionTTL        time.Duration
	AutoClickInterval time.Duration
	HistoryLimit      int
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "gophbank.db"
	c.SessionSecret = "gophbank-local-session"
	c.SessionTTL = 30 * 24 * time.Hour
	c.AutoClickInterval = time.Second
	c.HistoryLimit = 50
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
