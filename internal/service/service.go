package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bestsellers/landing/internal/client"
	"bestsellers/landing/internal/countup"
	"bestsellers/landing/internal/page"
	"bestsellers/landing/internal/render"
	"bestsellers/landing/internal/state"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// initErrorMessage is the only message a failed page shows, whatever the cause.
const initErrorMessage = "Ocorreu um erro ao carregar a página. Por favor, tente novamente."

type Service struct {
	client   client.CatalogClient
	renderer *render.Renderer
	page     *page.Page
	clock    clock.Clock

	countDuration time.Duration
	countFrame    time.Duration
}

func NewService(
	client client.CatalogClient,
	renderer *render.Renderer,
	page *page.Page,
	clk clock.Clock,
	countDuration time.Duration,
	countFrame time.Duration,
) *Service {
	return &Service{
		client:        client,
		renderer:      renderer,
		page:          page,
		clock:         clk,
		countDuration: countDuration,
		countFrame:    countFrame,
	}
}

// Init loads the catalog and renders the page. It always returns a usable
// state: on any failure the listing shows one error message, nothing else is
// rendered and the state is empty. The loading indicator is hidden on every path.
func (s *Service) Init(ctx context.Context) (st *state.AppState, err error) {
	defer s.page.HideLoading()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("initialization panic: %v", r)
		}
		if err != nil {
			if errors.Is(err, client.ErrFetchFailure) {
				log.Errorf("❌ Error loading products: %v", err)
			} else {
				log.Errorf("❌ Initialization error: %v", err)
			}
			s.page.ShowError(initErrorMessage)
			st = state.Empty()
		}
	}()

	catalog, err := s.client.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	st = state.New(catalog)
	if err := s.renderer.Render(s.page, st); err != nil {
		return nil, err
	}

	log.Infof("✅ Landing page initialized successfully")
	log.Infof("📦 %d categories loaded", len(st.Categories))
	return st, nil
}

// AnimateCounters counts the header statistics up to their totals.
func (s *Service) AnimateCounters(ctx context.Context, st *state.AppState) error {
	stats := render.CountStats(st.Categories)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return countup.Animate(ctx, s.clock, stats.Products, s.countDuration, s.countFrame, func(v string) {
			s.page.SetText(page.TotalProducts, v)
		})
	})
	g.Go(func() error {
		return countup.Animate(ctx, s.clock, stats.Categories, s.countDuration, s.countFrame, func(v string) {
			s.page.SetText(page.TotalCategories, v)
		})
	})

	return g.Wait()
}
