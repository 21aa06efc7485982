package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
)

type hooksResponse struct {
	Selected string        `json:"selected"`
	Count    int           `json:"count"`
	Summary  string        `json:"summary"`
	Hooks    []domain.Hook `json:"hooks"`
}

type categoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Hooks lists the catalog, optionally narrowed by ?category=<label>.
func Hooks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("category")
		sel, ok := domain.ParseSelection(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", raw))
			return
		}

		hooks := domain.Filter(d.Index.All(), sel)
		writeJSON(w, http.StatusOK, hooksResponse{
			Selected: sel.Label(),
			Count:    len(hooks),
			Summary:  domain.ResultSummary(len(hooks)),
			Hooks:    hooks,
		})
	}
}

// Hook returns a single catalog entry by id.
func Hook(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		h, ok := d.Index.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("hook %q not found", id))
			return
		}
		writeJSON(w, http.StatusOK, h)
	}
}

// Categories lists every filter option with the number of hooks it selects.
func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := d.Index.CountByCategory()
		sels := domain.Selections()

		out := make([]categoryCount, 0, len(sels))
		for _, sel := range sels {
			n := d.Index.Count()
			if c, ok := sel.Category(); ok {
				n = counts[c]
			}
			out = append(out, categoryCount{Label: sel.Label(), Count: n})
		}
		writeJSON(w, http.StatusOK, out)
	}
}
