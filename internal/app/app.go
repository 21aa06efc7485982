package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/hookhub/internal/config"
	"github.com/MrSnakeDoc/hookhub/internal/httpserver"
	"github.com/MrSnakeDoc/hookhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hookhub/internal/index"
	"github.com/MrSnakeDoc/hookhub/internal/logger"
	"github.com/MrSnakeDoc/hookhub/internal/version"
	"github.com/MrSnakeDoc/hookhub/internal/web"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	catalog *Catalog
}

// New loads the catalog once and wires the HTTP server around it.
// Any failure here is fatal: the page is never served without a valid catalog.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	cat, err := LoadCatalog(ctx, cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	memIndex := index.NewMemoryIndex(cat.Hooks, cat.Source)
	loggerClient.Info("catalog loaded",
		logger.String("source", cat.Source),
		logger.Int("hooks", memIndex.Count()))

	renderer, err := web.NewRenderer()
	if err != nil {
		_ = cat.Close()
		return nil, err
	}

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Index:        memIndex,
		Renderer:     renderer,
		DocsURL:      cfg.DocsURL,
	}
	if cat.Store != nil {
		d.Redis = cat.Store
	}

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  httpserver.New(cfg, loggerClient, d),
		catalog: cat,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting HookHub v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		_ = a.catalog.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.catalog.Close(); err != nil {
		a.logger.Warnf("failed to close redis: %v", err)
	} else if a.catalog.Store != nil {
		a.logger.Info("✅ Redis closed cleanly")
	}

	a.logger.Info("✅ HookHub stopped cleanly")
	return nil
}
