package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"bestsellers/landing/internal/domain"
	"bestsellers/landing/internal/format"
	"bestsellers/landing/internal/icon"
	"bestsellers/landing/internal/page"
	"bestsellers/landing/internal/slug"
	"bestsellers/landing/internal/state"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer turns catalog data into the markup fragments of the page.
// Derived values are recomputed on every call.
type Renderer struct {
	tmpl *template.Template
}

type navItem struct {
	Slug      string
	SectionID string
	Icon      string
	Name      string
	Active    bool
}

type sectionView struct {
	Slug       string
	SectionID  string
	Icon       string
	Name       string
	CountLabel string
	Cards      []cardView
}

type cardView struct {
	Href          string
	Title         string
	ImageURL      string
	Ranking       int
	Discount      int
	OriginalPrice string
	Price         format.Price
	PriceContent  string
	FreeShipping  bool
	Fulfillment   bool
}

// Stats are the aggregate counters shown in the page header.
type Stats struct {
	Products   int
	Categories int
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render replaces the navigation and the product listing of pg with the
// displayable categories of st and resets the counters for the count-up.
func (r *Renderer) Render(pg *page.Page, st *state.AppState) error {
	nav, err := r.Navigation(st.Categories, st.Active)
	if err != nil {
		return err
	}

	sections, err := r.Sections(st.Categories)
	if err != nil {
		return err
	}

	pg.Mount(page.CategoriesList, nav)
	pg.Mount(page.Products, sections)
	pg.SetText(page.TotalProducts, format.Integer(0))
	pg.SetText(page.TotalCategories, format.Integer(0))

	log.Debugf("Rendered %d categories", len(st.Categories))
	return nil
}

// Navigation renders one tab button per category; the button whose slug is
// active carries the active marker.
func (r *Renderer) Navigation(categories []domain.Category, active string) (string, error) {
	items := make([]navItem, 0, len(categories))
	marked := false
	for _, category := range categories {
		s := slug.Make(category.Name)
		isActive := s == active && !marked
		marked = marked || isActive

		items = append(items, navItem{
			Slug:      s,
			SectionID: page.SectionID(s),
			Icon:      icon.Resolve(category.Name),
			Name:      category.Name,
			Active:    isActive,
		})
	}

	return r.execute("nav", items)
}

func (r *Renderer) Sections(categories []domain.Category) (string, error) {
	views := make([]sectionView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newSectionView(category))
	}

	return r.execute("sections", views)
}

func (r *Renderer) Card(product domain.Product) (string, error) {
	return r.execute("card", newCardView(product))
}

// CountStats totals products and categories of the displayed categories.
func CountStats(categories []domain.Category) Stats {
	stats := Stats{Categories: len(categories)}
	for _, category := range categories {
		stats.Products += len(category.Products)
	}
	return stats
}

// CountLabel is the localized product count of a category header.
func CountLabel(n int) string {
	if n == 1 {
		return "1 produto"
	}
	return format.Integer(int64(n)) + " produtos"
}

func newSectionView(category domain.Category) sectionView {
	s := slug.Make(category.Name)

	cards := make([]cardView, 0, len(category.Products))
	for _, product := range category.Products {
		cards = append(cards, newCardView(product))
	}

	return sectionView{
		Slug:       s,
		SectionID:  page.SectionID(s),
		Icon:       icon.Resolve(category.Name),
		Name:       category.Name,
		CountLabel: CountLabel(len(category.Products)),
		Cards:      cards,
	}
}

func newCardView(product domain.Product) cardView {
	view := cardView{
		Href:         product.Destination(),
		Title:        product.Title,
		ImageURL:     product.ImageURL,
		Price:        format.FormatPrice(product.Price.Current),
		PriceContent: "0",
		FreeShipping: product.FreeShipping(),
		Fulfillment:  product.Fulfillment(),
	}

	if product.Price.Current != nil {
		view.PriceContent = product.Price.Current.String()
	}
	if product.HasRanking() {
		view.Ranking = *product.Ranking
	}
	if product.HasDiscount() {
		view.Discount = *product.Price.DiscountPercent
		// The struck-through price needs both a discount and a known original.
		if product.Price.Original != nil && !product.Price.Original.IsZero() {
			view.OriginalPrice = format.Amount(*product.Price.Original)
		}
	}

	return view
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
