// Package main provides the cvgen CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/benali/cvgen/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// configFile overrides the config path (flag, then CVGEN_CONFIG, then default)
var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "Regenerate CV and homepage bibliography sections from BibTeX",
	Long: `cvgen renders publication and talk entries from BibTeX files into
LaTeX and HTML fragments and splices them into marker-delimited regions
of CV documents and a homepage, leaving everything else untouched.

Commands output JSON by default for scripting; pass --human for
readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default cvgen.yml)")
	rootCmd.Version = Version
}

// loadSiteConfig resolves the config path and loads it.
// A .env file in the working directory is loaded first so it can supply
// CVGEN_CONFIG and CVGEN_AUTHOR overrides.
func loadSiteConfig() (*config.Config, error) {
	_ = godotenv.Load()

	path := configFile
	if path == "" {
		path = os.Getenv("CVGEN_CONFIG")
	}
	if path == "" {
		path = config.DefaultFile
	}
	return config.Load(path)
}
