package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func TestProductsServedVerbatim(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("want json content type, got %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != testDoc {
		t.Fatalf("document not served verbatim:\nwant %s\ngot  %s", testDoc, body)
	}
}

func TestProductsReadFailure(t *testing.T) {
	app := newTestAppWithCatalog(t, filepath.Join(t.TempDir(), "does-not-exist.json"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "error") {
		t.Fatalf("want error payload, got %s", body)
	}
}
