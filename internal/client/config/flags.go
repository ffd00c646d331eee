package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags overlays cfg with -a, -d, -l and -m from args. Other flags in
// args (such as -c) are left to their own parsers.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, "a", "d", "l", "m")

	fs := flag.NewFlagSet("gophauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the auth API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.InMemory, "m", cfg.InMemory, "keep the session in memory only")

	return fs.Parse(args)
}
