package services

import (
	"encoding/json"
	"os"

	"pricepeek/internal/domain"
)

// CatalogService is the product-document source. The document is served
// to clients verbatim; parsing happens only for engine consumers.
type CatalogService struct {
	Path string
}

func NewCatalogService(path string) *CatalogService {
	return &CatalogService{Path: path}
}

// Document returns the raw catalog bytes as stored on disk.
func (s *CatalogService) Document() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Load parses the document into the raw product structure.
func (s *CatalogService) Load() (domain.RawProductDocument, error) {
	var doc domain.RawProductDocument
	b, err := s.Document()
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}
