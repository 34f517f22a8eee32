package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"pricepeek/internal/services"
)

func TestCatalogServiceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	doc := `{"products":[{"product_id":"7","product_name":"GoPro Hero","brand":"GoPro","base_image_url":"","description":"action camera","variants":[{"specifications":{},"offers":[{"seller_name":"Amazon","price":100,"rating":4,"rating_count":1,"delivery_in_days":1,"is_trusted_seller":true}]}]}]}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	svc := services.NewCatalogService(path)

	b, err := svc.Document()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != doc {
		t.Fatalf("document altered on read")
	}

	parsed, err := svc.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed.Products) != 1 || parsed.Products[0].ProductName != "GoPro Hero" {
		t.Fatalf("bad parse: %+v", parsed)
	}
}

func TestCatalogServiceMissingFile(t *testing.T) {
	svc := services.NewCatalogService(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := svc.Document(); err == nil {
		t.Fatal("expected read failure")
	}
	if _, err := svc.Load(); err == nil {
		t.Fatal("expected load failure")
	}
}
