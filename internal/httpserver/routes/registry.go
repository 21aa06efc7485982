package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hookhub/internal/httpserver/mw"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
	// Policy builds a route middleware from the server dependencies.
	Policy func(d deps.Deps) Middleware
)

// HostRestricted limits routes to the configured Host headers.
func HostRestricted(d deps.Deps) Middleware {
	return mw.EnforceHost(d.AllowedHosts, d.Logger)
}

// CIDRRestricted limits routes to the configured client IPs/CIDRs.
func CIDRRestricted(d deps.Deps) Middleware {
	return mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)
}

type entry struct {
	reg      Registrar
	policies []Policy
}

var registry []entry

// Register a registrar with the access policies applied to all of its routes.
func Register(reg Registrar, policies ...Policy) {
	registry = append(registry, entry{reg: reg, policies: policies})
}

// RegisterAll mounts every registered route on r. Called once from server.New().
func RegisterAll(r chi.Router, d deps.Deps) {
	for _, e := range registry {
		if len(e.policies) == 0 {
			e.reg(r, d)
			continue
		}
		mws := make([]Middleware, len(e.policies))
		for i, p := range e.policies {
			mws[i] = p(d)
		}
		e.reg(r.With(mws...), d)
	}
}
