package engine

import (
	"context"

	"github.com/danieljhkim/whatnow/internal/state"
)

// Suggest offers eligible projects one by one and records the accepted one.
// With no eligible projects it does nothing and still saves.
func (e *Engine) Suggest(ctx context.Context, req *SuggestRequest) (*SuggestResult, error) {
	result := &SuggestResult{}

	err := e.withState(ctx, func(st *state.State) error {
		result.Candidates = e.selector.Candidates(st, req.Filter)
		e.logger.Debug("candidates selected", "count", len(result.Candidates), "projects", len(st.Projects))

		name, ok, err := e.prompter.Choose(result.Candidates)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		result.Chosen = name
		result.Selected = true
		result.Count = st.Increment(name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
