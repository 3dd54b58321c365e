package engine

import (
	"context"

	"github.com/danieljhkim/whatnow/internal/state"
)

// Increment asks the user to pick a project from the full list and adds one
// to its count. A bad answer aborts without saving.
func (e *Engine) Increment(ctx context.Context) (*IncrementResult, error) {
	result := &IncrementResult{}

	err := e.withState(ctx, func(st *state.State) error {
		names := make([]string, 0, len(st.Projects))
		for _, p := range st.Projects {
			names = append(names, p.Name)
		}

		index, err := e.prompter.PickIndex(names)
		if err != nil {
			return err
		}

		result.Project = names[index]
		result.Count = st.Increment(names[index])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Reset clears every count. Projects are left as they are.
func (e *Engine) Reset(ctx context.Context) (*ResetResult, error) {
	result := &ResetResult{}

	err := e.withState(ctx, func(st *state.State) error {
		result.Cleared = len(st.Counts)
		st.ResetCounts()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Prune removes counts left behind by projects that were renamed or deleted
// from the state file. No other operation touches them.
func (e *Engine) Prune(ctx context.Context) (*PruneResult, error) {
	result := &PruneResult{}

	err := e.withState(ctx, func(st *state.State) error {
		result.Removed = st.PruneOrphans()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
