// Package controller keeps the interactive state of the page in sync with
// navigation clicks and scrolling.
package controller

import (
	"errors"
	"sync"
	"time"

	"bestsellers/landing/internal/state"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownCategory = errors.New("unknown category")

// View is the projection target of the controller state plus the scroll
// effects it requests.
type View interface {
	SetActiveCategory(slug string)
	SetBackToTopVisible(visible bool)
	ScrollSectionIntoView(slug string)
	ScrollNavIntoView(slug string)
	ScrollToTop()
}

// Section is the vertical span of a rendered category section.
type Section struct {
	Slug   string `json:"slug"`
	Top    int    `json:"top"`
	Height int    `json:"height"`
}

func (s Section) Contains(y int) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Layout reports section geometry at the time a scroll is handled.
type Layout interface {
	Sections() []Section
}

type Options struct {
	ScrollDebounce     time.Duration
	BackToTopThreshold int
	ScrollProbeOffset  int
	Clock              clock.Clock
}

type Controller struct {
	mu        sync.Mutex
	state     *state.AppState
	view      View
	layout    Layout
	debouncer *Debouncer
	pendingY  int

	backToTopThreshold int
	probeOffset        int
}

func New(st *state.AppState, view View, layout Layout, opts Options) *Controller {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Controller{
		state:              st,
		view:               view,
		layout:             layout,
		debouncer:          NewDebouncer(clk, opts.ScrollDebounce),
		backToTopThreshold: opts.BackToTopThreshold,
		probeOffset:        opts.ScrollProbeOffset,
	}
}

// SelectCategory handles a click on a navigation button.
func (c *Controller) SelectCategory(slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.HasCategory(slug) {
		return ErrUnknownCategory
	}

	c.activate(slug)
	c.view.ScrollSectionIntoView(slug)
	return nil
}

// Scroll records the current scroll offset. Handling is coalesced: it runs
// once per quiet period with the latest offset.
func (c *Controller) Scroll(y int) {
	c.mu.Lock()
	c.pendingY = y
	c.mu.Unlock()

	c.debouncer.Debounce(c.handleScroll)
}

func (c *Controller) BackToTop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.ScrollToTop()
}

func (c *Controller) ActiveCategory() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Active
}

func (c *Controller) BackToTopVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.BackToTopVisible
}

// Close drops a scroll still waiting for its quiet period.
func (c *Controller) Close() {
	c.debouncer.Cancel()
}

func (c *Controller) handleScroll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	y := c.pendingY

	if visible := y > c.backToTopThreshold; visible != c.state.BackToTopVisible {
		c.state.BackToTopVisible = visible
		c.view.SetBackToTopVisible(visible)
	}

	probe := y + c.probeOffset
	for _, section := range c.layout.Sections() {
		if !section.Contains(probe) || !c.state.HasCategory(section.Slug) {
			continue
		}
		if section.Slug != c.state.Active {
			c.activate(section.Slug)
			c.view.ScrollNavIntoView(section.Slug)
			log.Debugf("Scroll at %d activated category %s", y, section.Slug)
		}
		return
	}
}

func (c *Controller) activate(slug string) {
	c.state.Active = slug
	c.view.SetActiveCategory(slug)
}

// ReportedLayout is a Layout fed by the browser with every scroll report.
type ReportedLayout struct {
	mu       sync.RWMutex
	sections []Section
}

func NewReportedLayout() *ReportedLayout {
	return &ReportedLayout{}
}

func (l *ReportedLayout) Update(sections []Section) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sections = append([]Section(nil), sections...)
}

func (l *ReportedLayout) Sections() []Section {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Section(nil), l.sections...)
}
