package engine

import (
	"context"

	"github.com/danieljhkim/whatnow/internal/selector"
	"github.com/danieljhkim/whatnow/internal/state"
)

// Path reports the state file in use.
func (e *Engine) Path(ctx context.Context) (*PathResult, error) {
	err := e.withState(ctx, func(st *state.State) error { return nil })
	if err != nil {
		return nil, err
	}

	return &PathResult{Path: e.paths.Dotfile, Local: e.paths.Local}, nil
}

// Locations lists every location tag, sorted and deduplicated.
func (e *Engine) Locations(ctx context.Context) (*LocationsResult, error) {
	result := &LocationsResult{}

	err := e.withState(ctx, func(st *state.State) error {
		result.Locations = st.Locations()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// List returns every project with its count and whether it is currently
// inside the fairness window.
func (e *Engine) List(ctx context.Context) (*ListResult, error) {
	result := &ListResult{}

	err := e.withState(ctx, func(st *state.State) error {
		pairs := selector.Pairs(st)
		result.MinCount = selector.MinCount(pairs)
		result.Projects = make([]ProjectInfo, 0, len(pairs))
		for _, c := range pairs {
			result.Projects = append(result.Projects, ProjectInfo{
				Name:     c.Project.Name,
				At:       c.Project.At,
				Count:    c.Count,
				Eligible: c.Count < result.MinCount+selector.Window,
			})
		}
		result.Orphans = st.Orphans()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
