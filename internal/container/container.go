package container

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"bestsellers/landing/internal/client"
	"bestsellers/landing/internal/config"
	"bestsellers/landing/internal/controller"
	"bestsellers/landing/internal/page"
	"bestsellers/landing/internal/render"
	"bestsellers/landing/internal/server"
	"bestsellers/landing/internal/service"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Client   client.CatalogClient
	Page     *page.Page
	Renderer *render.Renderer
	Layout   *controller.ReportedLayout
	Clock    clock.Clock

	Service *service.Service

	controller *controller.Controller
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Clock:  clock.New(),
		Layout: controller.NewReportedLayout(),
	}

	pg, err := page.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page: %w", err)
	}
	pg.SetScrollDebounce(cfg.UI.ScrollDebounce())
	container.Page = pg

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	container.Renderer = renderer

	container.Client = client.NewCatalogClient(cfg.Catalog)

	container.Service = service.NewService(
		container.Client,
		renderer,
		pg,
		container.Clock,
		cfg.UI.CountUpDuration(),
		cfg.UI.CountUpFrame(),
	)

	return container, nil
}

// Run initializes the page once, then serves it until ctx is cancelled.
func (c *Container) Run(ctx context.Context) error {
	st, initErr := c.Service.Init(ctx)

	c.controller = controller.New(st, c.Page, c.Layout, controller.Options{
		ScrollDebounce:     c.Config.UI.ScrollDebounce(),
		BackToTopThreshold: c.Config.UI.BackToTopThreshold,
		ScrollProbeOffset:  c.Config.UI.ScrollProbeOffset,
		Clock:              c.Clock,
	})

	srv, err := server.New(c.Config.Server, c.Page, c.controller, c.Layout)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx)
	})

	// A failed page keeps its counters at zero.
	if initErr == nil {
		g.Go(func() error {
			if err := c.Service.AnimateCounters(ctx, st); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.controller != nil {
		c.controller.Close()
	}
	if err := c.Client.Close(); err != nil {
		return fmt.Errorf("failed to close catalog client: %w", err)
	}

	log.Info("Container shut down successfully")
	return nil
}
