package domain

import "fmt"

// AllLabel is the wildcard label offered by the category filter.
// It is never stored on a Hook.
const AllLabel = "All"

// EmptyStateMessage is shown instead of the grid when nothing matches.
const EmptyStateMessage = "No hooks found in this category."

// Selection is the value of the category filter: either the wildcard or a
// single category.
type Selection struct {
	category Category
}

// All selects every hook.
var All = Selection{}

// Only selects the hooks of category c.
func Only(c Category) Selection {
	return Selection{category: c}
}

// Selections returns the filter labels in display order: All first, then
// every category.
func Selections() []Selection {
	cats := Categories()
	out := make([]Selection, 0, len(cats)+1)
	out = append(out, All)
	for _, c := range cats {
		out = append(out, Only(c))
	}
	return out
}

// ParseSelection resolves a filter label. The empty string is treated as All.
func ParseSelection(label string) (Selection, bool) {
	if label == "" || label == AllLabel {
		return All, true
	}
	c, ok := ParseCategory(label)
	if !ok {
		return All, false
	}
	return Only(c), true
}

// IsAll reports whether s is the wildcard.
func (s Selection) IsAll() bool { return s.category == 0 }

// Category returns the selected category and false for the wildcard.
func (s Selection) Category() (Category, bool) {
	return s.category, !s.IsAll()
}

// Label returns the text shown on the filter control.
func (s Selection) Label() string {
	if s.IsAll() {
		return AllLabel
	}
	return s.category.String()
}

func (s Selection) String() string { return s.Label() }

// Matches reports whether a hook of category c belongs to the selection.
func (s Selection) Matches(c Category) bool {
	return s.IsAll() || s.category == c
}

// Filter derives the view for sel from catalog. The result is a new slice in
// catalog order; catalog itself is left untouched. No match yields an empty,
// non-nil slice.
//
// Entries are shallow copies: HookTypes, Tags and GitHubStars share storage
// with catalog, so callers must treat them as read-only. Use Hook.Clone for
// an entry that will be modified.
func Filter(catalog []Hook, sel Selection) []Hook {
	if sel.IsAll() {
		out := make([]Hook, len(catalog))
		copy(out, catalog)
		return out
	}
	out := make([]Hook, 0, len(catalog))
	for _, h := range catalog {
		if h.Category == sel.category {
			out = append(out, h)
		}
	}
	return out
}

// ResultSummary renders the count line shown above the grid.
func ResultSummary(n int) string {
	if n == 1 {
		return "Showing 1 hook"
	}
	return fmt.Sprintf("Showing %d hooks", n)
}
