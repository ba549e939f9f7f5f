package state

import (
	"bestsellers/landing/internal/domain"
	"bestsellers/landing/internal/slug"
)

// AppState is the explicit state of the page for its whole lifetime. The
// rendered document is a projection of it. AppState does no locking of its
// own: after initialization it is owned by the interaction controller.
type AppState struct {
	Catalog          *domain.Catalog
	Categories       []domain.Category // displayable categories only
	Active           string            // slug of the highlighted category
	BackToTopVisible bool

	slugs map[string]struct{}
}

// New builds the state of a freshly loaded catalog. The first displayable
// category starts active.
func New(catalog *domain.Catalog) *AppState {
	categories := catalog.Displayable()

	s := &AppState{
		Catalog:    catalog,
		Categories: categories,
		slugs:      make(map[string]struct{}, len(categories)),
	}

	for _, category := range categories {
		s.slugs[slug.Make(category.Name)] = struct{}{}
	}
	if len(categories) > 0 {
		s.Active = slug.Make(categories[0].Name)
	}

	return s
}

// Empty is the state of a page whose initialization failed.
func Empty() *AppState {
	return New(nil)
}

func (s *AppState) HasCategory(categorySlug string) bool {
	_, ok := s.slugs[categorySlug]
	return ok
}

func (s *AppState) TotalProducts() int {
	total := 0
	for _, category := range s.Categories {
		total += len(category.Products)
	}
	return total
}
