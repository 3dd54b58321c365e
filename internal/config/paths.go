// Package config manages whatnow configuration and filesystem paths.
//
// The state file is named .whatnow.yml. A copy in the current working
// directory takes precedence; otherwise the file lives under the directory
// named by the WHATNOW_DOTFILE_DIR environment variable, which is required.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/danieljhkim/whatnow/internal/fsops"
)

// DotfileName is the file name of the persisted state.
const DotfileName = ".whatnow.yml"

// DotfileDirEnv names the environment variable holding the state directory.
const DotfileDirEnv = "WHATNOW_DOTFILE_DIR"

// ErrDotfileDirUnset indicates WHATNOW_DOTFILE_DIR is missing or empty.
var ErrDotfileDirUnset = errors.New(DotfileDirEnv + " environment variable not set")

// Settings holds configuration read from the environment.
type Settings struct {
	// DotfileDir is the base directory for the state file
	DotfileDir string `env:"WHATNOW_DOTFILE_DIR,required,notEmpty"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (*Settings, error) {
	return parseSettings(env.Options{})
}

// LoadSettingsFrom parses Settings from the given environment map instead of
// the process environment.
func LoadSettingsFrom(environ map[string]string) (*Settings, error) {
	return parseSettings(env.Options{Environment: environ})
}

func parseSettings(opts env.Options) (*Settings, error) {
	var s Settings
	// DotfileDir is the only field, so any failure is a missing or empty value.
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return nil, ErrDotfileDirUnset
	}
	return &s, nil
}

// Paths contains the resolved location of the state file.
type Paths struct {
	// DotfileDir is the configured base directory (from WHATNOW_DOTFILE_DIR)
	DotfileDir string

	// Dotfile is the absolute path of the state file in use
	Dotfile string

	// Local reports whether Dotfile is the working-directory override
	Local bool
}

// ResolvePaths picks the state file for cwd. A .whatnow.yml in cwd wins over
// the one under settings.DotfileDir. cwd is expected to be absolute.
func ResolvePaths(fs fsops.FS, cwd string, settings *Settings) (*Paths, error) {
	local := filepath.Join(cwd, DotfileName)
	exists, err := fs.Exists(local)
	if err != nil {
		return nil, fmt.Errorf("failed to check for %s: %w", local, err)
	}

	dir, err := filepath.Abs(settings.DotfileDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", DotfileDirEnv, err)
	}

	paths := &Paths{
		DotfileDir: dir,
		Dotfile:    filepath.Join(dir, DotfileName),
	}
	if exists {
		paths.Dotfile = local
		paths.Local = true
	}

	return paths, nil
}

// DefaultPaths loads Settings from the environment and resolves the state
// file relative to the current working directory.
func DefaultPaths(fs fsops.FS) (*Paths, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return ResolvePaths(fs, cwd, settings)
}
