package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keiko",
	Short: "Build the Keiko Generator web app and package it as a zip",
	Long: `keiko renders the Keiko Generator progressive web app (page, manifest,
service worker and icons) into an output directory and zips it for
distribution.

Examples:
  # Generate ./keiko_pwa and .keiko-pwa.zip
  keiko generate

  # Generate from a config file into a custom directory
  keiko generate --config keiko.yaml --output-dir dist/keiko

  # Draw a Kihon selection in the terminal
  keiko draw kihon`,
	SilenceUsage: true,
}

func main() {
	setupLogging(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("keiko failed")
		os.Exit(1)
	}
}

// setupLogging configures the global logger from KEIKO_LOG_LEVEL and
// KEIKO_LOG_FORMAT.
func setupLogging(out io.Writer) {
	level, err := zerolog.ParseLevel(os.Getenv("KEIKO_LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if os.Getenv("KEIKO_LOG_FORMAT") == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	}
}
