package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newRootCmd reads flag defaults from the environment, so .env must already
// be loaded when it is called.
func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "atschecker",
		Short: "Score resumes against an applicant tracking rubric",
		Long:  "atschecker scores resumes on sections, keywords, contact details, length and formatting, either once from the command line or as a queue worker.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
		SilenceUsage: true,
	}

	defaultLevel := os.Getenv("LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWorkerCmd())
	return rootCmd
}

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
