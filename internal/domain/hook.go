package domain

// Hook represents one curated catalog entry.
//
// A Hook is uniquely identified by its ID. Entries are built once when the
// catalog is loaded and are never mutated afterwards.
type Hook struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is a stable slug, unique across the catalog.
	// Example: multi-agent-observability
	ID string `json:"id"`

	// Name is the human-readable title.
	Name string `json:"name"`

	// ─────────────────────────────
	// Description & classification
	// ─────────────────────────────

	// Description is one or two sentences.
	Description string `json:"description"`

	// Category is the primary category used by the filter.
	Category Category `json:"category"`

	// HookTypes lists the lifecycle events the hook uses, in display order.
	HookTypes []EventType `json:"hookTypes"`

	// Tags are free-form and reserved for a future search feature.
	Tags []string `json:"tags,omitempty"`

	// ─────────────────────────────
	// Provenance
	// ─────────────────────────────

	// RepoURL points to the external source repository.
	RepoURL string `json:"repoUrl"`

	// Author is the GitHub username or organisation.
	Author string `json:"author"`

	// GitHubStars is nil when unknown. Zero is a real value.
	GitHubStars *int `json:"githubStars,omitempty"`
}

// Stars is a helper for building optional star counts.
func Stars(n int) *int { return &n }

// Clone returns a deep copy of h.
func (h Hook) Clone() Hook {
	out := h
	if h.HookTypes != nil {
		out.HookTypes = append([]EventType(nil), h.HookTypes...)
	}
	if h.Tags != nil {
		out.Tags = append([]string(nil), h.Tags...)
	}
	if h.GitHubStars != nil {
		out.GitHubStars = Stars(*h.GitHubStars)
	}
	return out
}
