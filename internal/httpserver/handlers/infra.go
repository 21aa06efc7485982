package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
)

const redisPingTimeout = 2 * time.Second

type componentStatus struct {
	OK         bool   `json:"ok"`
	Source     string `json:"source,omitempty"`
	HooksCount *int   `json:"hooks_loaded,omitempty"`
	LoadedAt   string `json:"loaded_at,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Count      *int   `json:"count,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"catalog": catalogStatus(d),
			"redis":   checkRedis(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func catalogStatus(d deps.Deps) componentStatus {
	if d.Index == nil {
		return componentStatus{OK: false, Error: "catalog not loaded"}
	}
	count := d.Index.Count()
	return componentStatus{
		OK:         count > 0,
		Source:     d.Index.Source(),
		HooksCount: &count,
		LoadedAt:   d.Index.LoadedAt().UTC().Format(time.RFC3339),
	}
}

// overallStatus is "critical" without a catalog and "degraded" when redis
// backs the catalog but cannot be reached. The page keeps serving the
// snapshot loaded at startup in that case.
func overallStatus(components map[string]componentStatus) string {
	if c := components["catalog"]; !c.OK {
		return "critical"
	}
	if rc := components["redis"]; rc.Mode != "disabled" && !rc.OK {
		return "degraded"
	}
	return "ok"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Redis == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := d.Redis.Ping(ctx); err != nil {
		d.Logger.Warn("redis ping failed", logger.Error(err))
		return componentStatus{OK: false, Mode: "catalog-source", Error: err.Error()}
	}

	status := componentStatus{OK: true, Mode: "catalog-source"}

	meta, err := d.Redis.Meta(ctx)
	if err != nil {
		d.Logger.Warn("failed to read catalog meta", logger.Error(err))
		status.Error = err.Error()
		return status
	}
	status.Count = &meta.Count
	if !meta.UpdatedAt.IsZero() {
		status.UpdatedAt = meta.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return status
}
