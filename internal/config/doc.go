// Package config loads runtime configuration for the GophBank CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with GOPHBANK_, optionally read from a
//     dotenv file given by -e / -env-file (or ./.env when present).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   database driver: sqlite or postgres
//	-dsn string database DSN (file path for sqlite)
//	-i int      auto-clicker interval (seconds)
//	-l string   log level: debug, info, warn, error
//
// # Environment
//
//	GOPHBANK_DB_DRIVER, GOPHBANK_DB_DSN, GOPHBANK_SESSION_SECRET,
//	GOPHBANK_SESSION_TTL, GOPHBANK_AUTO_CLICK_INTERVAL,
//	GOPHBANK_HISTORY_LIMIT, GOPHBANK_LOG_LEVEL
//
// Durations use time.ParseDuration syntax ("1s", "720h").
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "1s" or
// integer nanoseconds. Absent keys keep the earlier value:
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "gophbank.db",
//	  "session_ttl": "720h",
//	  "auto_click_interval": "1s",
//	  "history_limit": 50,
//	  "log_level": "info"
//	}
package config
