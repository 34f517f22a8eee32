package catalog

import "pricepeek/internal/domain"

// Store holds the flattened catalog. Products are immutable after Load;
// all client-side queries (filtering, detail lookup) read from here.
type Store struct {
	products []domain.Product
	byID     map[domain.ID]int
	loaded   bool
}

func NewStore() *Store {
	return &Store{byID: map[domain.ID]int{}}
}

// Load flattens the raw document into the store and returns the number
// of malformed rows that were skipped.
func (s *Store) Load(doc domain.RawProductDocument) int {
	products, skipped := Flatten(doc)
	s.products = products
	s.byID = make(map[domain.ID]int, len(products))
	for i, p := range products {
		s.byID[p.ID] = i
	}
	s.loaded = true
	return skipped
}

func (s *Store) Loaded() bool { return s.loaded }

// Products returns the catalog in load order.
func (s *Store) Products() []domain.Product { return s.products }

// Get looks a product up by its canonical id.
func (s *Store) Get(id domain.ID) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}
