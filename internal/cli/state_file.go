package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the state file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Path(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		PrintInfo(cmd.OutOrStdout(), result.Path)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with their counts",
	Long: `Display every project in file order with its count, its locations and
whether it is currently inside the fairness window.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.List(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result)
		}

		if len(result.Projects) == 0 {
			PrintEmptyState(out, "No projects found")
			return nil
		}

		t := newProjectTable(out, "NAME", "COUNT", "ELIGIBLE", "AT")
		for _, p := range result.Projects {
			eligible := "no"
			if p.Eligible {
				eligible = "yes"
			}
			t.Row(p.Name, strconv.Itoa(p.Count), eligible, formatLocations(p.At, t.LocationWidth()))
		}
		if err := t.Flush(); err != nil {
			return err
		}

		if len(result.Orphans) > 0 {
			PrintWarning(out, "Counts for unknown projects (see whatnow prune): "+strings.Join(result.Orphans, ", "))
		}
		return nil
	},
}
