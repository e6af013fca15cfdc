package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger zerolog.Logger

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	root := &cobra.Command{
		Use:          "jobshop",
		Short:        "Makespan-minimal job-shop scheduling with downtime and break calendars",
		SilenceUsage: true,
	}
	root.AddCommand(solveCmd())
	root.AddCommand(verifyCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		logger.Warn().Str("level", level).Msg("unknown log level, keeping info")
		parsed = zerolog.InfoLevel
	}
	logger = logger.Level(parsed)
}
