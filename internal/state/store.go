package state

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/whatnow/internal/fsops"
)

// ErrEmptyDocument indicates the state file contained no YAML document.
var ErrEmptyDocument = errors.New("empty state document")

// StateStore provides an interface for persisting the whatnow state.
type StateStore interface {
	// Load reads the state at path. A missing or unreadable file yields an
	// empty State; load failures are never returned to the caller.
	Load(path string) *State

	// Save writes the state to path atomically.
	Save(path string, state *State) error
}

// FileStateStore implements StateStore using a YAML file on disk.
type FileStateStore struct {
	fs     fsops.FS
	logger *slog.Logger
}

// NewFileStateStore creates a new FileStateStore. A nil logger discards
// log output.
func NewFileStateStore(fs fsops.FS, logger *slog.Logger) *FileStateStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FileStateStore{
		fs:     fs,
		logger: logger,
	}
}

// Load loads the state at path, falling back to an empty State.
func (s *FileStateStore) Load(path string) *State {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.logger.Debug("state file unreadable, starting empty", "path", path, "error", err)
		return NewState()
	}

	state, err := Decode(data)
	if err != nil {
		s.logger.Debug("state file invalid, starting empty", "path", path, "error", err)
		return NewState()
	}

	s.logger.Debug("loaded state", "path", path, "projects", len(state.Projects), "counts", len(state.Counts))
	return state
}

// Save saves the state atomically.
func (s *FileStateStore) Save(path string, state *State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}

	if err := s.fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	s.logger.Debug("saved state", "path", path, "bytes", len(data))
	return nil
}

// Decode parses a state document strictly: unknown fields, wrong types and
// negative counts are errors.
func Decode(data []byte) (*State, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var state State
	if err := dec.Decode(&state); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state: %w", err)
	}

	state.normalize()
	return &state, nil
}

// Encode renders the state as YAML.
func Encode(state *State) ([]byte, error) {
	state.normalize()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(state); err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	return buf.Bytes(), nil
}
