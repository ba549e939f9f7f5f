package domain

import "github.com/shopspring/decimal"

// Catalog is the root of the products document.
type Catalog struct {
	Categories []Category `json:"categories"`
}

type Category struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type Product struct {
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	URL          string    `json:"url"`
	AffiliateURL string    `json:"affiliate_url,omitempty"`
	Ranking      *int      `json:"ranking,omitempty"` // Position in the best-sellers list
	Price        Price     `json:"price"`
	Shipping     *Shipping `json:"shipping,omitempty"`
}

type Price struct {
	Current         *decimal.Decimal `json:"current"`
	Original        *decimal.Decimal `json:"original,omitempty"`
	DiscountPercent *int             `json:"discount_percent,omitempty"`
}

type Shipping struct {
	FreeShipping bool `json:"free_shipping,omitempty"`
	Fulfillment  bool `json:"fulfillment,omitempty"`
}

// Displayable returns the categories that have at least one product, in catalog order.
func (c *Catalog) Displayable() []Category {
	if c == nil {
		return nil
	}

	categories := make([]Category, 0, len(c.Categories))
	for _, category := range c.Categories {
		if len(category.Products) > 0 {
			categories = append(categories, category)
		}
	}
	return categories
}

// Destination is the outbound link of the product card.
func (p Product) Destination() string {
	if p.AffiliateURL != "" {
		return p.AffiliateURL
	}
	return p.URL
}

func (p Product) HasDiscount() bool {
	return p.Price.DiscountPercent != nil && *p.Price.DiscountPercent > 0
}

// HasRanking reports whether the product carries a positive ranking.
func (p Product) HasRanking() bool {
	return p.Ranking != nil && *p.Ranking > 0
}

func (p Product) FreeShipping() bool {
	return p.Shipping != nil && p.Shipping.FreeShipping
}

func (p Product) Fulfillment() bool {
	return p.Shipping != nil && p.Shipping.Fulfillment
}
