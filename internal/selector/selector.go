// Package selector decides which projects are offered to the user.
//
// A project is eligible when it has been chosen fewer than Window times more
// than the least-chosen project. The window keeps the single least-visited
// project from being offered every time while still favoring neglected
// ones. Eligible projects are shuffled so that list position carries no
// weight.
package selector

import (
	"slices"

	"github.com/danieljhkim/whatnow/internal/random"
	"github.com/danieljhkim/whatnow/internal/state"
)

// Window is the count slack above the minimum that still counts as eligible.
const Window = 4

// Candidate is a project paired with its current count.
type Candidate struct {
	Project state.Project `json:"project"`
	Count   int           `json:"count"`
}

// Filter restricts candidates to a location. The zero Filter matches all.
type Filter struct {
	location string
	enabled  bool
}

// AtLocation returns a Filter matching projects tagged with location.
func AtLocation(location string) Filter {
	return Filter{location: location, enabled: true}
}

// Location returns the location and whether the filter is active.
func (f Filter) Location() (string, bool) {
	return f.location, f.enabled
}

func (f Filter) matches(p state.Project) bool {
	return !f.enabled || slices.Contains(p.At, f.location)
}

// Selector computes shuffled candidate lists.
type Selector struct {
	src random.Source
}

// New creates a Selector that shuffles with src.
func New(src random.Source) *Selector {
	return &Selector{src: src}
}

// Pairs returns every project with its count, in state order.
func Pairs(st *state.State) []Candidate {
	pairs := make([]Candidate, 0, len(st.Projects))
	for _, p := range st.Projects {
		pairs = append(pairs, Candidate{Project: p, Count: st.Count(p.Name)})
	}
	return pairs
}

// MinCount returns the smallest count in pairs, or 0 if pairs is empty.
func MinCount(pairs []Candidate) int {
	if len(pairs) == 0 {
		return 0
	}
	lowest := pairs[0].Count
	for _, c := range pairs[1:] {
		lowest = min(lowest, c.Count)
	}
	return lowest
}

// Eligible returns the pairs that pass filter and fall inside the fairness
// window, in state order. The minimum is taken over all projects, not just
// the ones the filter keeps.
func Eligible(st *state.State, filter Filter) []Candidate {
	pairs := Pairs(st)
	limit := MinCount(pairs) + Window

	out := make([]Candidate, 0, len(pairs))
	for _, c := range pairs {
		if filter.matches(c.Project) && c.Count < limit {
			out = append(out, c)
		}
	}
	return out
}

// Candidates returns the eligible pairs in random order.
func (s *Selector) Candidates(st *state.State, filter Filter) []Candidate {
	out := Eligible(st, filter)
	s.src.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
