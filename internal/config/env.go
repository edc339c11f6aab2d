package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophbank/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "GOPHBANK_"

// parseEnv overlays Config with GOPHBANK_* environment variables.
//
// A dotenv file named by -e/-env-file is loaded first and must exist; without
// the flag ./.env is loaded when present. Variables already set in the process
// environment win over the file. Malformed values panic.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := lookup("DB_DRIVER"); ok {
		cfg.DatabaseDriver = v
	}
	if v, ok := lookup("DB_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := lookup("SESSION_SECRET"); ok {
		cfg.SessionSecret = v
	}
	if v, ok := lookup("SESSION_TTL"); ok {
		cfg.SessionTTL = mustDuration(v)
	}
	if v, ok := lookup("AUTO_CLICK_INTERVAL"); ok {
		cfg.AutoClickInterval = mustDuration(v)
	}
	if v, ok := lookup("HISTORY_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.HistoryLimit = n
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func mustDuration(v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	return d
}
