package storefront_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricepeek/internal/catalog"
	"pricepeek/internal/domain"
	"pricepeek/internal/kv"
	"pricepeek/internal/storefront"
)

const routerDoc = `{"products":[
  {"product_id":%s,"product_name":"Samsung Galaxy S23","brand":"Samsung","base_image_url":"","description":"phone",
   "variants":[{"specifications":{},"offers":[{"seller_name":"Amazon","price":100,"rating":4,"rating_count":1,"delivery_in_days":2,"is_trusted_seller":true}]}]}
]}`

func docWithID(t *testing.T, idJSON string) domain.RawProductDocument {
	t.Helper()
	var doc domain.RawProductDocument
	require.NoError(t, json.Unmarshal([]byte(fmt.Sprintf(routerDoc, idJSON)), &doc))
	return doc
}

func newLoadedApp(t *testing.T, idJSON string) *storefront.App {
	t.Helper()
	cat := catalog.NewStore()
	cat.Load(docWithID(t, idJSON))
	app, err := storefront.NewApp(context.Background(), kv.NewMemory(), cat)
	require.NoError(t, err)
	return app
}

func TestNavigateTokens(t *testing.T) {
	cases := []struct {
		token   string
		view    storefront.View
		overlay storefront.Overlay
	}{
		{"categories", storefront.ViewCategories, storefront.OverlayNone},
		{"login", storefront.ViewHome, storefront.OverlayLogin},
		{"signup", storefront.ViewHome, storefront.OverlaySignup},
		{"cart", storefront.ViewCart, storefront.OverlayNone},
		{"", storefront.ViewHome, storefront.OverlayNone},
		{"no-such-view", storefront.ViewHome, storefront.OverlayNone},
		{"product=999", storefront.ViewHome, storefront.OverlayNone}, // unknown id
	}
	app := newLoadedApp(t, `42`)
	for _, tc := range cases {
		t.Run("token_"+tc.token, func(t *testing.T) {
			v := app.Navigate(tc.token)
			assert.Equal(t, tc.view, v.View)
			assert.Equal(t, tc.overlay, v.Overlay)
		})
	}
}

func TestNavigateProductIDTypeAgnostic(t *testing.T) {
	// same token resolves whether the document stored the id as a number
	// or a string
	for _, idJSON := range []string{`42`, `"42"`} {
		app := newLoadedApp(t, idJSON)
		v := app.Navigate("product=42")
		assert.Equal(t, storefront.ViewProductDetail, v.View)
		assert.Equal(t, domain.ID("42"), v.ProductID)

		p, ok := app.Catalog.Get(v.ProductID)
		require.True(t, ok)
		assert.Equal(t, "Samsung Galaxy S23", p.Name)
	}
}

func TestNavigateClosesOverlay(t *testing.T) {
	app := newLoadedApp(t, `42`)
	v := app.Navigate("login")
	require.Equal(t, storefront.OverlayLogin, v.Overlay)

	v = app.Navigate("categories")
	assert.Equal(t, storefront.ViewCategories, v.View)
	assert.Equal(t, storefront.OverlayNone, v.Overlay)
}

func TestInitialRouteDeferredUntilCatalogLoad(t *testing.T) {
	cat := catalog.NewStore()
	app, err := storefront.NewApp(context.Background(), kv.NewMemory(), cat)
	require.NoError(t, err)

	// route arrives before the catalog: stays parked on home
	v := app.Navigate("product=42")
	assert.Equal(t, storefront.ViewHome, v.View)
	assert.Equal(t, v, app.CurrentView())

	cat.Load(docWithID(t, `42`))
	v = app.OnCatalogLoaded()
	assert.Equal(t, storefront.ViewProductDetail, v.View)
	assert.Equal(t, domain.ID("42"), v.ProductID)

	// replay happens once
	assert.Equal(t, v, app.OnCatalogLoaded())
}
