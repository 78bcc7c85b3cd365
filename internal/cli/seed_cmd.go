package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diegoclair/shift-roster/internal/validation"
)

func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed files",
	}

	cmd.AddCommand(seedCheckCmd())

	return cmd
}

func seedCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a seed file without starting the server",
		Long: `Apply the seed file to an empty in-memory store with the same rules as the
API and report what it would create, or every violation of the first
rejected entry.`,
		Args: cobra.ExactArgs(1),
		RunE: runSeedCheck,
	}
}

func runSeedCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rt, err := newRuntime(cfg, commandLogger(cfg, cmd.ErrOrStderr()), runtimeOptions{})
	if err != nil {
		return err
	}
	defer rt.close()

	out := cmd.OutOrStdout()
	sum, err := rt.loadSeed(cmd.Context(), args[0])
	if err != nil {
		fmt.Fprintf(out, "%s %s is invalid\n", failMark, args[0])
		printSummary(out, sum)
		if violations, ok := validation.Violations(err); ok {
			for _, v := range violations {
				fmt.Fprintf(out, "    %s %s: %s\n", failMark, v.Field, v.Message)
			}
		}
		return err
	}

	fmt.Fprintf(out, "%s %s is valid\n", okMark, args[0])
	printSummary(out, sum)
	return nil
}
