// Package storefront holds the client-side application state: the
// loaded catalog, the active filter criteria, the cart, the session and
// the current view. State transitions are pure computations; rendering
// is a projection left to the caller.
package storefront

import (
	"context"
	"encoding/json"
	"errors"

	"pricepeek/internal/catalog"
	"pricepeek/internal/domain"
	"pricepeek/internal/kv"
)

const (
	cartKey    = "cart"
	sessionKey = "session"
)

// App owns all mutable client state. One instance per client; methods
// are not safe for concurrent use, matching the single event loop the
// UI runs on.
type App struct {
	Catalog *catalog.Store

	store   kv.Store
	cart    []domain.CartItem
	session *domain.Session

	view       ViewState
	pending    string
	hasPending bool
}

// NewApp rehydrates cart and session from the persistent store so both
// survive reloads.
func NewApp(ctx context.Context, store kv.Store, cat *catalog.Store) (*App, error) {
	a := &App{
		Catalog: cat,
		store:   store,
		view:    ViewState{View: ViewHome, Overlay: OverlayNone},
	}

	if b, err := store.Get(ctx, sessionKey); err == nil {
		var s domain.Session
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, err
		}
		a.session = &s
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if b, err := store.Get(ctx, cartKey); err == nil {
		if err := json.Unmarshal(b, &a.cart); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return a, nil
}

// Visible applies the given criteria to the loaded catalog.
func (a *App) Visible(c catalog.Criteria) []domain.Product {
	return catalog.Apply(a.Catalog.Products(), c)
}
