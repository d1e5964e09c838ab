package cmd

import (
	"github.com/ninjada/hip-trivia/cmd/cmd/play"
	"github.com/spf13/cobra"
	"log/slog"
)

var (
	rootCmd = &cobra.Command{
		Use:   "hip-trivia",
		Short: "",
	}
)

// Execute executes the root command.
func Execute(logger *slog.Logger) error {
	rootCmd.AddCommand(play.NewPlayCommand(logger))
	return rootCmd.Execute()
}
