package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Hooks int  `json:"hooks"`
}

// Readyz reports ready once a non-empty catalog is loaded.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := 0
		if d.Index != nil {
			count = d.Index.Count()
		}

		status := http.StatusOK
		if count == 0 {
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, readyzResponse{
			Ready: count > 0,
			Hooks: count,
		})
	}
}
