package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/hookhub/internal/domain"
	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
	"github.com/MrSnakeDoc/hookhub/internal/web"
)

// Page renders the catalog page. The selected category comes from the
// "category" query parameter; a missing or unknown value shows everything.
func Page(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("category")
		sel, ok := domain.ParseSelection(raw)
		if !ok {
			d.Logger.Debug("unknown category, showing all hooks",
				logger.String("category", raw))
		}

		page := web.NewPage(d.Index.All())
		page.Select(sel)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := d.Renderer.Render(w, page.View(d.DocsURL)); err != nil {
			d.Logger.Error("failed to render page", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
