package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"bestsellers/landing/internal/domain"

	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"
)

type catalogParser struct {
	policy *bluemonday.Policy
}

func newCatalogParser() *catalogParser {
	return &catalogParser{
		policy: bluemonday.StrictPolicy(),
	}
}

// envelope keeps categories as a pointer so a missing key can be told apart from an empty list.
type envelope struct {
	Categories *[]domain.Category `json:"categories"`
}

func (p *catalogParser) ParseCatalog(payload []byte) (*domain.Catalog, error) {
	var env envelope
	if err := json.NewDecoder(bytes.NewReader(payload)).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormatFailure, err)
	}

	if env.Categories == nil {
		return nil, fmt.Errorf("%w: missing categories", ErrFormatFailure)
	}

	catalog := &domain.Catalog{Categories: *env.Categories}
	for i := range catalog.Categories {
		category := &catalog.Categories[i]
		category.Name = p.text(category.Name)

		for j := range category.Products {
			product := &category.Products[j]
			product.Title = p.text(product.Title)
			product.ImageURL = strings.TrimSpace(product.ImageURL)
			product.URL = strings.TrimSpace(product.URL)
			product.AffiliateURL = strings.TrimSpace(product.AffiliateURL)
		}
	}

	log.Debugf("Parsed catalog with %d categories", len(catalog.Categories))
	return catalog, nil
}

// text strips markup from third-party text. The policy escapes entities, which the
// templates escape again, so they are decoded back here.
func (p *catalogParser) text(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(s)))
}
