package state

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// State is the full contents of the state file.
type State struct {
	// Projects is the ordered list of projects, as written in the file
	Projects []Project `yaml:"projects" json:"projects"`

	// Counts maps project names to how often they have been chosen
	Counts CountTable `yaml:"counts" json:"counts"`
}

// Project is a single activity the user may choose.
type Project struct {
	// Name is the unique key used in Counts
	Name string `yaml:"name" json:"name"`

	// At lists the location tags for this project (may be empty)
	At []string `yaml:"at" json:"at"`
}

// CountTable maps project names to visit counts. A missing key means zero.
// yaml.v3 writes map keys sorted, which keeps the file diff-friendly.
type CountTable map[string]int

// NewState creates a new empty State.
func NewState() *State {
	return &State{
		Projects: []Project{},
		Counts:   make(CountTable),
	}
}

// UnmarshalYAML accepts either the full {name, at} mapping or a bare string,
// the older flat form in which a project is just its name.
func (p *Project) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*p = Project{Name: name, At: []string{}}
		return nil

	case yaml.MappingNode:
		// Node.Decode does not inherit the decoder's KnownFields setting,
		// so unknown keys are rejected here.
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			switch key.Value {
			case "name", "at":
			default:
				return fmt.Errorf("line %d: field %s not found in project", key.Line, key.Value)
			}
		}

		type plain Project
		var raw plain
		if err := value.Decode(&raw); err != nil {
			return err
		}
		if raw.At == nil {
			raw.At = []string{}
		}
		*p = Project(raw)
		return nil

	default:
		return fmt.Errorf("line %d: project must be a mapping or a string", value.Line)
	}
}

// Count returns the count for name, or zero if none is recorded.
func (s *State) Count(name string) int {
	return s.Counts[name]
}

// Increment adds one to the count for name, creating the entry if needed,
// and returns the new count.
func (s *State) Increment(name string) int {
	if s.Counts == nil {
		s.Counts = make(CountTable)
	}
	s.Counts[name]++
	return s.Counts[name]
}

// ResetCounts clears every count. Projects are untouched.
func (s *State) ResetCounts() {
	s.Counts = make(CountTable)
}

// Locations returns every location tag across all projects, sorted and
// deduplicated.
func (s *State) Locations() []string {
	var places []string
	for _, p := range s.Projects {
		places = append(places, p.At...)
	}
	slices.Sort(places)
	places = slices.Compact(places)
	if places == nil {
		places = []string{}
	}
	return places
}

// Orphans returns the sorted names in Counts that match no project.
func (s *State) Orphans() []string {
	known := make(map[string]struct{}, len(s.Projects))
	for _, p := range s.Projects {
		known[p.Name] = struct{}{}
	}

	orphans := []string{}
	for name := range s.Counts {
		if _, ok := known[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	slices.Sort(orphans)
	return orphans
}

// PruneOrphans deletes counts that match no project and returns their names.
func (s *State) PruneOrphans() []string {
	orphans := s.Orphans()
	for _, name := range orphans {
		delete(s.Counts, name)
	}
	return orphans
}

// Validate checks invariants that the YAML types alone cannot express.
func (s *State) Validate() error {
	for name, count := range s.Counts {
		if count < 0 {
			return fmt.Errorf("count for %q is negative: %d", name, count)
		}
	}
	return nil
}

// normalize replaces nil collections with empty ones so that an encoded
// state always carries both fields.
func (s *State) normalize() {
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	for i := range s.Projects {
		if s.Projects[i].At == nil {
			s.Projects[i].At = []string{}
		}
	}
	if s.Counts == nil {
		s.Counts = make(CountTable)
	}
}
