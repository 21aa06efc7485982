package index

import (
	"time"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

// MemoryIndex holds the catalog loaded at startup.
// It is built once and never mutated, so concurrent readers need no locking.
type MemoryIndex struct {
	hooks    []domain.Hook  // catalog order
	byID     map[string]int // ID -> position in hooks
	source   string         // name of the source the catalog came from
	loadedAt time.Time
}

// NewMemoryIndex creates an index over a private copy of hooks.
func NewMemoryIndex(hooks []domain.Hook, source string) *MemoryIndex {
	idx := &MemoryIndex{
		hooks:    make([]domain.Hook, len(hooks)),
		byID:     make(map[string]int, len(hooks)),
		source:   source,
		loadedAt: time.Now(),
	}
	for i, h := range hooks {
		idx.hooks[i] = h.Clone()
		idx.byID[h.ID] = i
	}
	return idx
}

// All returns the whole catalog in its original order.
// The returned slice is a copy; the entries themselves are shared and must
// be treated as read-only.
func (idx *MemoryIndex) All() []domain.Hook {
	out := make([]domain.Hook, len(idx.hooks))
	copy(out, idx.hooks)
	return out
}

// Get retrieves a hook by ID
func (idx *MemoryIndex) Get(id string) (domain.Hook, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return domain.Hook{}, false
	}
	return idx.hooks[i], true
}

// Count returns the number of hooks in the index
func (idx *MemoryIndex) Count() int {
	return len(idx.hooks)
}

// CountByCategory returns how many hooks each category holds.
func (idx *MemoryIndex) CountByCategory() map[domain.Category]int {
	counts := make(map[domain.Category]int)
	for _, h := range idx.hooks {
		counts[h.Category]++
	}
	return counts
}

// Source returns the name of the catalog source.
func (idx *MemoryIndex) Source() string {
	return idx.source
}

// LoadedAt returns when the index was built.
func (idx *MemoryIndex) LoadedAt() time.Time {
	return idx.loadedAt
}
