package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/hookhub/internal/index"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
	redisstore "github.com/MrSnakeDoc/hookhub/internal/store/redis"
	"github.com/MrSnakeDoc/hookhub/internal/web"
)

// CatalogStore is the part of the Redis catalog store the infra endpoint reads.
type CatalogStore interface {
	Ping(ctx context.Context) error
	Meta(ctx context.Context) (redisstore.Meta, error)
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time   // for testing, defaults to time.Now
	AllowedHosts []string           // Host headers allowed to access the page and API
	AllowedCIDRS []string           // IPs allowed to access readyz/infra endpoints
	TrustProxy   bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Index        *index.MemoryIndex // catalog loaded at startup
	Renderer     *web.Renderer      // page templates
	DocsURL      string             // header documentation link
	Redis        CatalogStore       // nil unless the catalog comes from redis
}
