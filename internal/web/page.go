package web

import "github.com/MrSnakeDoc/hookhub/internal/domain"

// Page owns the selected category and derives everything else from it.
// A Page is built per request and is not safe for concurrent use.
type Page struct {
	catalog  []domain.Hook
	selected domain.Selection
}

// NewPage returns a page over catalog with "All" selected.
// The catalog slice is only read, never modified.
func NewPage(catalog []domain.Hook) *Page {
	return &Page{catalog: catalog, selected: domain.All}
}

// Select replaces the current selection.
func (p *Page) Select(sel domain.Selection) {
	p.selected = sel
}

func (p *Page) Selected() domain.Selection {
	return p.selected
}

// Visible filters the catalog by the current selection.
// It is recomputed on every call.
func (p *Page) Visible() []domain.Hook {
	return domain.Filter(p.catalog, p.selected)
}

// Summary is the result count line, e.g. "Showing 3 hooks".
func (p *Page) Summary() string {
	return domain.ResultSummary(len(p.Visible()))
}

// Empty reports whether the current selection matches no hook.
func (p *Page) Empty() bool {
	return len(p.Visible()) == 0
}

// PageView is the model handed to the page template.
type PageView struct {
	DocsURL      string
	Filter       []FilterOption
	Selected     string
	Summary      string
	Cards        []Card
	Empty        bool
	EmptyMessage string
}

// View snapshots the page into a template model.
// When nothing matches, Cards is nil and EmptyMessage is set instead.
func (p *Page) View(docsURL string) PageView {
	visible := p.Visible()
	v := PageView{
		DocsURL:  docsURL,
		Filter:   NewFilterControl(p.selected).Options(),
		Selected: p.selected.Label(),
		Summary:  domain.ResultSummary(len(visible)),
	}
	if len(visible) == 0 {
		v.Empty = true
		v.EmptyMessage = domain.EmptyStateMessage
		return v
	}
	v.Cards = NewGrid(visible)
	return v
}
