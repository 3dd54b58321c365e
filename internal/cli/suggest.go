package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/whatnow/internal/engine"
	"github.com/danieljhkim/whatnow/internal/selector"
)

var atCmd = &cobra.Command{
	Use:   "at [location]",
	Short: "List locations, or suggest a project at one",
	Long: `Without an argument, list every location tag used by any project.

With a location, suggest only projects tagged with it. The fairness window is
still measured against all projects, so a location whose projects you have
done far more often than the rest may have nothing to suggest.`,
	Example: `  whatnow at
  whatnow at park`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runSuggest(cmd, selector.AtLocation(args[0]))
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Locations(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result.Locations)
		}

		if len(result.Locations) == 0 {
			PrintEmptyState(out, "No locations defined")
			return nil
		}

		PrintList(out, result.Locations)
		return nil
	},
}

// runSuggest runs one suggestion round and reports the outcome.
func runSuggest(cmd *cobra.Command, filter selector.Filter) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	result, err := eng.Suggest(context.Background(), &engine.SuggestRequest{Filter: filter})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case result.Selected:
		PrintSuccess(out, fmt.Sprintf("%s it is (%s so far)", result.Chosen, formatCount(result.Count, "time", "times")))
	case len(result.Candidates) == 0:
		if loc, ok := filter.Location(); ok {
			PrintEmptyState(out, fmt.Sprintf("Nothing to suggest at %s", loc))
		} else {
			PrintEmptyState(out, "Nothing to suggest")
		}
	default:
		PrintInfo(out, "Nothing chosen, counts unchanged")
	}
	return nil
}
