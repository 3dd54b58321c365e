package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var incCmd = &cobra.Command{
	Use:   "inc",
	Short: "Add one to a project's count",
	Long: `Print every project with its index and read the index of the one to
increment from standard input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Increment(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s is now at %s", result.Project, formatCount(result.Count, "time", "times")))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every count",
	Long:  `Clear the count table. The project list is left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Reset(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Cleared %s", formatCount(result.Cleared, "count", "counts")))
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop counts for projects that no longer exist",
	Long: `Counts are kept when a project is renamed or removed from the state file.
prune deletes those leftover entries.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Prune(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result)
		}

		if len(result.Removed) == 0 {
			PrintEmptyState(out, "No orphaned counts")
			return nil
		}

		PrintSuccess(out, fmt.Sprintf("Removed %s", formatCount(len(result.Removed), "orphaned count", "orphaned counts")))
		PrintList(out, result.Removed)
		return nil
	},
}
