package engine

import "github.com/danieljhkim/whatnow/internal/selector"

// SuggestRequest represents a request to suggest a project.
type SuggestRequest struct {
	// Filter optionally restricts candidates to one location
	Filter selector.Filter
}
