package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"pricepeek/internal/config"
	"pricepeek/internal/http/handlers"
	applog "pricepeek/internal/log"
	"pricepeek/internal/repos"
)

const testDoc = `{"products":[{"product_id":1,"product_name":"Pixel 9","brand":"Google","base_image_url":"","description":"phone","variants":[{"specifications":{"RAM":"8 GB"},"offers":[{"seller_name":"Amazon","price":59999,"rating":4.5,"rating_count":10,"delivery_in_days":2,"is_trusted_seller":true}]}]}]}`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	catalogPath := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(catalogPath, []byte(testDoc), 0644); err != nil {
		t.Fatal(err)
	}
	return newTestAppWithCatalog(t, catalogPath)
}

func newTestAppWithCatalog(t *testing.T, catalogPath string) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{DBDSN: ":memory:", CatalogPath: catalogPath}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
		},
	})
	app.Use(requestid.New())

	api := app.Group("/api")
	api.Get("/products", deps.ProductHandler.List)
	api.Post("/signup", deps.AuthHandler.Signup)
	api.Post("/login", deps.AuthHandler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestSignupThenLoginFlow(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/signup", `{"username":"alice","email":"a@x.com","password":"pw"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup: want 201, got %d", resp.StatusCode)
	}

	// duplicate email is a conflict, not a crash
	resp = postJSON(t, app, "/api/signup", `{"username":"alice2","email":"a@x.com","password":"pw2"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate signup: want 409, got %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/login", `{"email":"missing@x.com","password":"pw"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown email: want 404, got %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/login", `{"email":"a@x.com","password":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password: want 401, got %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/api/login", `{"email":"a@x.com","password":"pw"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Message string `json:"message"`
		User    struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("bad login body: %v (%s)", err, raw)
	}
	if out.User.Username != "alice" || out.User.ID == 0 {
		t.Fatalf("bad login payload: %+v", out)
	}
	// the credential must never appear in the response
	if strings.Contains(string(raw), "password") || strings.Contains(string(raw), "hash") {
		t.Fatalf("credential material leaked: %s", raw)
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"username":"","email":"a@x.com","password":"pw"}`,
		`{"username":"alice","email":"","password":"pw"}`,
		`{"username":"alice","email":"not-an-email","password":"pw"}`,
		`{"username":"alice","email":"a@x.com","password":""}`,
	} {
		resp := postJSON(t, app, "/api/signup", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %s: want 400, got %d", body, resp.StatusCode)
		}
	}
}
