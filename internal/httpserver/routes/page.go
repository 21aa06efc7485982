package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hookhub/internal/httpserver/handlers"
)

func init() { Register(registerPage, HostRestricted) }

func registerPage(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Page(d))
}
