package cli

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/whatnow/internal/config"
	"github.com/danieljhkim/whatnow/internal/engine"
	"github.com/danieljhkim/whatnow/internal/fsops"
	"github.com/danieljhkim/whatnow/internal/prompt"
	"github.com/danieljhkim/whatnow/internal/random"
	"github.com/danieljhkim/whatnow/internal/selector"
	"github.com/danieljhkim/whatnow/internal/state"
)

// newEngine creates a new engine with real implementations of all
// dependencies, reading answers from the command's input stream.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	fs := fsops.NewRealFS()

	paths, err := config.DefaultPaths(fs)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr())
	logger.Debug("resolved state file", "path", paths.Dotfile, "local", paths.Local)

	stateStore := state.NewFileStateStore(fs, logger)
	sel := selector.New(random.NewRealSource())
	session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())

	return engine.New(stateStore, sel, session, *paths, logger), nil
}

// newLogger returns a text logger on w. Only warnings are shown unless
// --verbose is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
