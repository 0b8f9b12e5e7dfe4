package config

import (
	"flag"
	"os"

	"github.com/mlevko/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-f string   path to the local database file (default from Config)
//	-m          run in demo mode against the built-in mock backend
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL to access server")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to local database file")
	fs.BoolVar(&cfg.DemoMode, "m", cfg.DemoMode, "demo mode (built-in mock backend)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
