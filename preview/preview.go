// Package preview serves resolved document heads for the pages of a static
// site over HTTP, so head metadata can be checked without running a build.
//
// Pages are read from Config.ContentDir on every request; site metadata comes
// from a sitedata.Source, cached for Config.CacheTTL.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eringen/sitehead/internal/logging"
	"github.com/eringen/sitehead/sitedata"
)

// App is the preview server. It wires the site metadata source, page
// loading, middleware and handlers together.
type App struct {
	Config Config
	Echo   *echo.Echo
	Source sitedata.Source

	cache  *sitedata.Cache
	logger zerolog.Logger
}

// New creates an App serving pages from cfg.ContentDir with site metadata
// from src. Routes are registered immediately, so Echo can be used as an
// http.Handler before Start.
func New(cfg Config, src sitedata.Source, opts ...Option) *App {
	cfg.setDefaults()

	if src == nil {
		src = sitedata.Static(nil)
	}

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Source: src,
		logger: *logging.Default(),
	}
	if cfg.CacheTTL > 0 {
		a.cache = sitedata.NewCache(src, cfg.CacheTTL)
		a.Source = a.cache
	}

	for _, opt := range opts {
		opt(a)
	}

	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// Start listens on Config.Addr and blocks until the server stops.
func (a *App) Start() error {
	a.logger.Info().Str("addr", a.Config.Addr).Str("content", a.Config.ContentDir).Msg("preview server listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("sitehead: preview server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// InvalidateSite drops cached site metadata so the next request reloads it.
func (a *App) InvalidateSite() {
	if a.cache != nil {
		a.cache.Invalidate()
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/healthz", handleHealth)
	e.GET("/head/*", a.handleHead)
	e.GET("/api/head/*", a.handleHeadJSON)
	e.GET("/page/*", a.handlePage)
	e.POST("/api/site/invalidate", a.handleInvalidate)
}
