package config

import (
	"flag"
	"os"

	"github.com/dailyepiphany/epiphany/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file
//	-u string   base URL of the generation provider
//	-k string   provider API key
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.ProviderBaseURL, "u", cfg.ProviderBaseURL, "generation provider base URL")
	fs.StringVar(&cfg.ProviderAPIKey, "k", cfg.ProviderAPIKey, "generation provider API key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
