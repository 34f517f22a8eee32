package catalog

import (
	"math"
	"strings"

	"pricepeek/internal/domain"
)

// Criteria is the current filter state. Empty sets mean "no restriction".
type Criteria struct {
	Search     string
	MinPrice   float64
	MaxPrice   float64
	Brands     []string
	Categories []domain.Category
	Platforms  []string
}

// NewCriteria returns the neutral criteria: everything passes.
func NewCriteria() Criteria {
	return Criteria{MaxPrice: math.Inf(1)}
}

// Apply computes the visible subset of products. Predicates run in a
// fixed order with short-circuit on the first failure; output preserves
// input order.
func Apply(products []domain.Product, c Criteria) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, c Criteria) bool {
	if term := strings.ToLower(strings.TrimSpace(c.Search)); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(string(p.Category)), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) {
			return false
		}
	}

	best, ok := BestPrice(p)
	if !ok {
		return false
	}
	if best < c.MinPrice || best > c.MaxPrice {
		return false
	}

	if len(c.Brands) > 0 && !containsString(c.Brands, p.Brand) {
		return false
	}

	if len(c.Categories) > 0 {
		found := false
		for _, cat := range c.Categories {
			if cat == p.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(c.Platforms) > 0 && !anySellerOnPlatform(p.Sellers, c.Platforms) {
		return false
	}

	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func anySellerOnPlatform(sellers []domain.Seller, platforms []string) bool {
	for _, s := range sellers {
		name := strings.ToLower(s.Name)
		for _, plat := range platforms {
			if strings.Contains(name, strings.ToLower(plat)) {
				return true
			}
		}
	}
	return false
}
