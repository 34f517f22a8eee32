package catalog

import (
	"fmt"

	"pricepeek/internal/domain"
	applog "pricepeek/internal/log"
)

// Flatten derives display products from a raw document. Each raw product
// collapses to its first variant; later variants are intentionally
// ignored. Rows with no variants or no offers are skipped and counted,
// never fatal to the batch.
func Flatten(doc domain.RawProductDocument) ([]domain.Product, int) {
	out := make([]domain.Product, 0, len(doc.Products))
	skipped := 0
	for _, rp := range doc.Products {
		p, err := flattenOne(rp)
		if err != nil {
			applog.Error(nil, "catalog.flatten.skip", err, map[string]any{"product_id": string(rp.ProductID)})
			skipped++
			continue
		}
		out = append(out, p)
	}
	return out, skipped
}

func flattenOne(rp domain.RawProduct) (domain.Product, error) {
	if len(rp.Variants) == 0 {
		return domain.Product{}, fmt.Errorf("%w: no variants", domain.ErrMalformedProduct)
	}
	v := rp.Variants[0]
	if len(v.Offers) == 0 {
		return domain.Product{}, fmt.Errorf("%w: first variant has no offers", domain.ErrMalformedProduct)
	}

	specs := make([]string, 0, len(v.Specifications))
	for _, s := range v.Specifications {
		specs = append(specs, s.Key+": "+s.Value)
	}
	sellers := make([]domain.Seller, 0, len(v.Offers))
	for _, o := range v.Offers {
		sellers = append(sellers, domain.Seller{
			Name:         o.SellerName,
			Price:        o.Price,
			Rating:       o.Rating,
			ReviewCount:  o.RatingCount,
			DeliveryDays: o.DeliveryInDays,
			Trusted:      o.IsTrustedSeller,
		})
	}

	return domain.Product{
		ID:             rp.ProductID,
		Name:           rp.ProductName,
		Brand:          rp.Brand,
		Image:          rp.BaseImageURL,
		Description:    rp.Description,
		Category:       Categorize(rp.ProductName, rp.Description),
		Specifications: specs,
		Sellers:        sellers,
	}, nil
}

// BestPrice is the minimum seller price. ok is false for a product with
// no sellers, which only happens for hand-built values: Flatten never
// emits one.
func BestPrice(p domain.Product) (float64, bool) {
	if len(p.Sellers) == 0 {
		return 0, false
	}
	best := p.Sellers[0].Price
	for _, s := range p.Sellers[1:] {
		if s.Price < best {
			best = s.Price
		}
	}
	return best, true
}
