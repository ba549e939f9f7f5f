// Package page holds the single in-memory HTML document the service renders into
// and serves. Renderers inject fragments into mount points; the interaction
// controller projects its state onto the document through the same type.
package page

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// MountPoint is the id of an element the renderer writes into.
type MountPoint string

const (
	Loading         MountPoint = "loading"
	CategoriesList  MountPoint = "categoriesList"
	Products        MountPoint = "productsContainer"
	TotalProducts   MountPoint = "totalProducts"
	TotalCategories MountPoint = "totalCategories"
	BackToTop       MountPoint = "backToTop"
)

const (
	activeNavClass     = "category-btn--active"
	loadingHiddenClass = "loading--hidden"
	backToTopVisible   = "back-to-top--visible"

	// ScrollTop is the scroll target recorded for the page origin.
	ScrollTop = "top"
)

//go:embed shell.html
var shell string

const errorMarkup = `<div class="products__error" role="alert">` +
	`<p class="products__error-icon">😕</p>` +
	`<p class="products__error-message"></p>` +
	`</div>`

// Page is safe for concurrent use; every mutation is serialized.
type Page struct {
	mu  sync.Mutex
	doc *goquery.Document
}

func New() (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page shell: %w", err)
	}

	for _, id := range []MountPoint{Loading, CategoriesList, Products, TotalProducts, TotalCategories, BackToTop} {
		if doc.Find("#"+string(id)).Length() == 0 {
			return nil, fmt.Errorf("page shell is missing mount point #%s", id)
		}
	}

	return &Page{doc: doc}, nil
}

// Mount replaces the whole content of a mount point.
func (p *Page) Mount(id MountPoint, html string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.find(id).SetHtml(html)
}

func (p *Page) SetText(id MountPoint, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.find(id).SetText(text)
}

func (p *Page) Text(id MountPoint) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return strings.TrimSpace(p.find(id).Text())
}

func (p *Page) HideLoading() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.find(Loading).AddClass(loadingHiddenClass).SetAttr("hidden", "")
}

func (p *Page) LoadingHidden() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.find(Loading).HasClass(loadingHiddenClass)
}

// ShowError replaces the product listing with a single message.
func (p *Page) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	container := p.find(Products)
	container.SetHtml(errorMarkup)
	container.Find(".products__error-message").SetText(message)
}

// SetActiveCategory marks the first navigation button for slug as selected and
// clears every other one.
func (p *Page) SetActiveCategory(slug string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	marked := false
	p.find(CategoriesList).Find(".category-btn").Each(func(_ int, btn *goquery.Selection) {
		if category, _ := btn.Attr("data-category"); category == slug && !marked {
			btn.AddClass(activeNavClass).SetAttr("aria-selected", "true")
			marked = true
			return
		}
		btn.RemoveClass(activeNavClass).SetAttr("aria-selected", "false")
	})
}

// ActiveCategories lists the slugs of every navigation button currently marked active.
func (p *Page) ActiveCategories() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var slugs []string
	p.find(CategoriesList).Find("." + activeNavClass).Each(func(_ int, btn *goquery.Selection) {
		slugs = append(slugs, btn.AttrOr("data-category", ""))
	})
	return slugs
}

func (p *Page) SetBackToTopVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if visible {
		p.find(BackToTop).AddClass(backToTopVisible)
	} else {
		p.find(BackToTop).RemoveClass(backToTopVisible)
	}
}

func (p *Page) BackToTopVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.find(BackToTop).HasClass(backToTopVisible)
}

// ScrollSectionIntoView records a smooth page scroll to the category section.
func (p *Page) ScrollSectionIntoView(slug string) {
	p.setBody("data-scroll-target", SectionID(slug))
}

// ScrollNavIntoView records that the nav strip should bring the button into
// view without moving the page.
func (p *Page) ScrollNavIntoView(slug string) {
	p.setBody("data-nav-focus", slug)
}

func (p *Page) ScrollToTop() {
	p.setBody("data-scroll-target", ScrollTop)
}

// ScrollTarget returns the last recorded page scroll target.
func (p *Page) ScrollTarget() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.doc.Find("body").AttrOr("data-scroll-target", "")
}

func (p *Page) NavFocus() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.doc.Find("body").AttrOr("data-nav-focus", "")
}

// Intents are the scroll effects requested since they were last taken.
type Intents struct {
	ScrollTarget string
	NavFocus     string
}

// TakeIntents returns the pending scroll effects and clears them, so the
// browser applies each one once.
func (p *Page) TakeIntents() Intents {
	p.mu.Lock()
	defer p.mu.Unlock()

	body := p.doc.Find("body")
	intents := Intents{
		ScrollTarget: body.AttrOr("data-scroll-target", ""),
		NavFocus:     body.AttrOr("data-nav-focus", ""),
	}
	body.RemoveAttr("data-scroll-target").RemoveAttr("data-nav-focus")
	return intents
}

// SetScrollDebounce tells the page script how long the server coalesces scroll reports.
func (p *Page) SetScrollDebounce(d time.Duration) {
	p.setBody("data-scroll-debounce", strconv.FormatInt(d.Milliseconds(), 10))
}

// HTML renders the whole document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.doc.Html()
}

// Fragment renders a mount point including its own element.
func (p *Page) Fragment(id MountPoint) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return goquery.OuterHtml(p.find(id))
}

// SectionID is the anchor id of a category section.
func SectionID(slug string) string {
	return "section-" + slug
}

func (p *Page) setBody(attr, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.doc.Find("body").SetAttr(attr, value)
}

func (p *Page) find(id MountPoint) *goquery.Selection {
	return p.doc.Find("#" + string(id))
}
