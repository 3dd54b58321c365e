// Package state manages the persisted whatnow state file.
//
// The state file is a YAML document with two top-level fields: the list of
// projects (each with a name and optional location tags) and the table of
// how many times each project has been chosen. The file is edited by hand to
// add projects; whatnow only ever changes the counts.
//
// Key concepts:
//   - State: Projects plus the CountTable, loaded once and saved once per run
//   - Project: A named activity with location tags used for filtering
//   - CountTable: Visit counts keyed by project name; absent means zero
//   - StateStore: Interface for loading and saving the state file
package state
