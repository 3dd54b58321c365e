// Package engine provides the core business logic for whatnow operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level components. Every operation follows the same lifecycle: load
// the state file once, run the operation against that single State value,
// and save it back. A failing operation returns before the save, so nothing
// it changed in memory reaches disk.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Suggest: Fairness selection followed by the interactive yes/no loop
//   - Increment/Reset/Prune: Direct count table edits
//   - Path/Locations/List: Read-only views (the state is still rewritten)
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/danieljhkim/whatnow/internal/config"
	"github.com/danieljhkim/whatnow/internal/selector"
	"github.com/danieljhkim/whatnow/internal/state"
)

// Prompter asks the user questions.
type Prompter interface {
	// Choose returns the first candidate the user accepts.
	Choose(candidates []selector.Candidate) (name string, ok bool, err error)

	// PickIndex returns the index of the name the user picks.
	PickIndex(names []string) (int, error)
}

// Engine orchestrates all whatnow operations.
// It is the main API surface called by the CLI.
type Engine struct {
	stateStore state.StateStore
	selector   *selector.Selector
	prompter   Prompter
	paths      config.Paths
	logger     *slog.Logger
}

// New creates a new Engine with the given dependencies. A nil logger
// discards log output.
func New(
	stateStore state.StateStore,
	sel *selector.Selector,
	prompter Prompter,
	paths config.Paths,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		stateStore: stateStore,
		selector:   sel,
		prompter:   prompter,
		paths:      paths,
		logger:     logger,
	}
}

// withState loads the state, passes it to fn and saves it if fn succeeds.
// The save happens even when fn changed nothing.
func (e *Engine) withState(ctx context.Context, fn func(st *state.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	st := e.stateStore.Load(e.paths.Dotfile)

	if err := fn(st); err != nil {
		return err
	}

	if err := e.stateStore.Save(e.paths.Dotfile, st); err != nil {
		return fmt.Errorf("failed to save state to %s: %w", e.paths.Dotfile, err)
	}
	return nil
}
