package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hookhub/internal/httpserver/handlers"
)

func init() { Register(registerAPI, HostRestricted) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Get("/api/hooks", handlers.Hooks(d))
	r.Get("/api/hooks/{id}", handlers.Hook(d))
	r.Get("/api/categories", handlers.Categories(d))
}
