package engine

import "errors"

var (
	// ErrUnrecognizedCommand indicates an unknown subcommand was given.
	ErrUnrecognizedCommand = errors.New("unrecognized subcommand")
)
