package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ExportCmd writes a timesheet for a date range into the sqlite export
// database. State is in memory, so the rosters come from a seed file.
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a timesheet to sqlite",
		Long: `Apply a seed file and write one timesheet line per shift, plus one summary
per roster, for rosters dated between --from and --to (inclusive).

Lines written earlier for the same rosters are replaced.

Usage:
  roster export --seed rosters.yaml --from 2026-10-19 --to 2026-10-25
  roster export --seed rosters.yaml --from 2026-10-19 --to 2026-10-19 --db ./out.db`,
		RunE: runExport,
	}

	cmd.Flags().String("seed", "", "Seed file holding the rosters (defaults to SEED_FILE)")
	cmd.Flags().String("from", "", "First date, YYYY-MM-DD")
	cmd.Flags().String("to", "", "Last date, YYYY-MM-DD (defaults to --from)")
	cmd.Flags().String("db", "", "Export database path (overrides EXPORT_DB_PATH)")
	cmd.MarkFlagRequired("from")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.ExportDBPath = path
	}
	seedFile := cfg.SeedFile
	if path, _ := cmd.Flags().GetString("seed"); path != "" {
		seedFile = path
	}
	if seedFile == "" {
		return fmt.Errorf("no seed file: pass --seed or set SEED_FILE")
	}
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if to == "" {
		to = from
	}

	rt, err := newRuntime(cfg, commandLogger(cfg, cmd.ErrOrStderr()), runtimeOptions{openDB: true})
	if err != nil {
		return err
	}
	defer rt.close()

	if _, err := rt.loadSeed(cmd.Context(), seedFile); err != nil {
		return err
	}

	result, err := rt.services.Roster.ExportTimesheet(cmd.Context(), from, to)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Exported %s to %s into %s\n", okMark, result.From, result.To,
		color.New(color.FgCyan).Sprint(cfg.ExportDBPath))
	fmt.Fprintf(out, "  %d roster(s), %d line(s)\n", result.Rosters, result.Lines)
	return nil
}
