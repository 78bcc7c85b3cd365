// Package cli holds the cobra commands of the shift-roster binary.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/diegoclair/shift-roster/internal/config"
	"github.com/diegoclair/shift-roster/internal/logging"
	"github.com/diegoclair/shift-roster/internal/seed"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// RootCmd returns the root command with every subcommand attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Shift roster service",
		Long: `roster keeps locations, staff and daily shift rosters in memory and
serves them over a REST API and a Slack /roster command.

Configuration comes from the environment (a .env file is loaded when present).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(ExportCmd())
	rootCmd.AddCommand(SeedCmd())

	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// commandLogger logs to stderr so command output on stdout stays clean.
func commandLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return logging.New(cfg.LogLevel, cfg.LogFormat, w)
}

func printSummary(w io.Writer, sum seed.Summary) {
	fmt.Fprintf(w, "  %s %d location(s)\n", okMark, sum.Locations)
	fmt.Fprintf(w, "  %s %d staff\n", okMark, sum.Staff)
	fmt.Fprintf(w, "  %s %d roster(s), %d shift(s)\n", okMark, sum.Rosters, sum.Shifts)
}
