package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "gophbank.db", c.DatabaseDSN)
	assert.NotEmpty(t, c.SessionSecret)
	assert.Equal(t, 720*time.Hour, c.SessionTTL)
	assert.Equal(t, time.Second, c.AutoClickInterval)
	assert.Equal(t, 50, c.HistoryLimit)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_dsn": "from-json.db",
		"log_level":    "debug",
	})
	t.Setenv("GOPHBANK_DB_DSN", "from-env.db")
	t.Setenv("GOPHBANK_HISTORY_LIMIT", "7")
	os.Args = []string{"gophbank", "-c", path, "-l", "error"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "from-json.db", cfg.DatabaseDSN, "json beats env")
	assert.Equal(t, 7, cfg.HistoryLimit, "env beats defaults")
	assert.Equal(t, "error", cfg.LogLevel, "flags beat json")
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
}
