package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophbank/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database driver
//	-dsn string database DSN
//	-i int      auto-clicker interval in seconds
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so flags owned by other stages
// (-c, -e) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-dsn", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "d", cfg.DatabaseDriver, "database driver (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	interval := fs.Int("i", int(cfg.AutoClickInterval.Seconds()), "auto-clicker interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.AutoClickInterval = time.Duration(*interval) * time.Second
		}
	})
}
