package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophbank/internal/flagx"
	"github.com/dmitrijs2005/gophbank/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "1s" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDriver    string         `json:"database_driver"`
	DatabaseDSN       string         `json:"database_dsn"`
	SessionSecret     string         `json:"session_secret"`
	SessionTTL        timex.Duration `json:"session_ttl"`
	AutoClickInterval timex.Duration `json:"auto_click_interval"`
	HistoryLimit      int            `json:"history_limit"`
	LogLevel          string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Keys that are absent or zero keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDriver != "" {
		cfg.DatabaseDriver = jc.DatabaseDriver
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionTTL.Duration > 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.AutoClickInterval.Duration > 0 {
		cfg.AutoClickInterval = jc.AutoClickInterval.Duration
	}
	if jc.HistoryLimit > 0 {
		cfg.HistoryLimit = jc.HistoryLimit
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
