package web

import (
	"net/url"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
)

// FilterOption is one button of the category filter.
type FilterOption struct {
	Label  string
	Active bool
	Href   string
}

// FilterControl renders the category buttons for the selection owned by the page.
// It keeps no state of its own.
type FilterControl struct {
	active domain.Selection
}

func NewFilterControl(active domain.Selection) FilterControl {
	return FilterControl{active: active}
}

// Options returns "All" followed by every category, in display order.
// Exactly one option is active.
func (f FilterControl) Options() []FilterOption {
	sels := domain.Selections()
	opts := make([]FilterOption, 0, len(sels))
	for _, sel := range sels {
		opts = append(opts, FilterOption{
			Label:  sel.Label(),
			Active: sel == f.active,
			Href:   SelectionHref(sel),
		})
	}
	return opts
}

// SelectionHref is the page URL that selects sel.
func SelectionHref(sel domain.Selection) string {
	if sel.IsAll() {
		return "/"
	}
	return "/?" + url.Values{"category": {sel.Label()}}.Encode()
}
