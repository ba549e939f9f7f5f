package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"bestsellers/landing/internal/config"
	"bestsellers/landing/internal/controller"
	"bestsellers/landing/internal/page"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Interactor is the part of the controller driven by browser events.
type Interactor interface {
	SelectCategory(slug string) error
	Scroll(y int)
	BackToTop()
	ActiveCategory() string
	BackToTopVisible() bool
}

type Server struct {
	cfg        config.ServerConfig
	page       *page.Page
	interactor Interactor
	layout     *controller.ReportedLayout
	assets     fs.FS
	router     chi.Router
}

type scrollReport struct {
	Y        int                  `json:"y"`
	Sections []controller.Section `json:"sections"`
}

// stateResponse carries the controller state and the scroll effects the
// browser has not applied yet.
type stateResponse struct {
	Active           string `json:"active"`
	BackToTopVisible bool   `json:"back_to_top_visible"`
	ScrollTarget     string `json:"scroll_target,omitempty"`
	NavFocus         string `json:"nav_focus,omitempty"`
}

func New(cfg config.ServerConfig, pg *page.Page, interactor Interactor, layout *controller.ReportedLayout) (*Server, error) {
	assets, err := page.Assets()
	if err != nil {
		return nil, fmt.Errorf("failed to load page assets: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		page:       pg,
		interactor: interactor,
		layout:     layout,
		assets:     assets,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", s.handlePage)
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(s.assets))))

	r.Route("/ui", func(ui chi.Router) {
		ui.Get("/nav", s.handleNav)
		ui.Get("/state", s.handleState)
		ui.Post("/categories/{slug}/select", s.handleSelect)
		ui.Post("/scroll", s.handleScroll)
		ui.Post("/back-to-top", s.handleBackToTop)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Landing page listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := time.Duration(s.cfg.ShutdownTimeout) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info("🛑 Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	html, err := s.page.HTML()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeHTML(w, html)
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	s.writeFragment(w, page.CategoriesList)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	intents := s.page.TakeIntents()
	_ = json.NewEncoder(w).Encode(stateResponse{
		Active:           s.interactor.ActiveCategory(),
		BackToTopVisible: s.interactor.BackToTopVisible(),
		ScrollTarget:     intents.ScrollTarget,
		NavFocus:         intents.NavFocus,
	})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := s.interactor.SelectCategory(slug); err != nil {
		if errors.Is(err, controller.ErrUnknownCategory) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.writeError(w, err)
		return
	}

	s.writeFragment(w, page.CategoriesList)
}

func (s *Server) handleScroll(w http.ResponseWriter, r *http.Request) {
	var report scrollReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		http.Error(w, "invalid scroll report", http.StatusBadRequest)
		return
	}

	if report.Sections != nil {
		s.layout.Update(report.Sections)
	}
	s.interactor.Scroll(report.Y)

	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleBackToTop(w http.ResponseWriter, r *http.Request) {
	s.interactor.BackToTop()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeFragment(w http.ResponseWriter, id page.MountPoint) {
	html, err := s.page.Fragment(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeHTML(w, html)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	log.Errorf("❌ Failed to serve page: %v", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
