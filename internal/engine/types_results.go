package engine

import "github.com/danieljhkim/whatnow/internal/selector"

// SuggestResult represents the outcome of a suggestion round.
type SuggestResult struct {
	// Candidates is the shuffled list that was offered
	Candidates []selector.Candidate `json:"candidates"`

	// Chosen is the accepted project name (empty if Selected is false)
	Chosen string `json:"chosen,omitempty"`

	// Selected reports whether the user accepted a candidate
	Selected bool `json:"selected"`

	// Count is the chosen project's count after the increment
	Count int `json:"count,omitempty"`
}

// IncrementResult represents the result of a manual increment.
type IncrementResult struct {
	Project string `json:"project"`
	Count   int    `json:"count"`
}

// ResetResult represents the result of clearing the count table.
type ResetResult struct {
	// Cleared is the number of count entries removed
	Cleared int `json:"cleared"`
}

// PruneResult represents the result of removing orphaned counts.
type PruneResult struct {
	// Removed lists the pruned names, sorted
	Removed []string `json:"removed"`
}

// PathResult describes the state file in use.
type PathResult struct {
	Path  string `json:"path"`
	Local bool   `json:"local"`
}

// LocationsResult lists every location tag.
type LocationsResult struct {
	Locations []string `json:"locations"`
}

// ProjectInfo is one row of the list view.
type ProjectInfo struct {
	Name     string   `json:"name"`
	At       []string `json:"at"`
	Count    int      `json:"count"`
	Eligible bool     `json:"eligible"`
}

// ListResult is the full list view.
type ListResult struct {
	Projects []ProjectInfo `json:"projects"`
	MinCount int           `json:"minCount"`

	// Orphans lists counts whose project no longer exists
	Orphans []string `json:"orphans"`
}
