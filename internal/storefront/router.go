package storefront

import (
	"strings"

	"pricepeek/internal/domain"
)

type View string

const (
	ViewHome          View = "home"
	ViewCategories    View = "categories"
	ViewProductDetail View = "productDetail"
	ViewCart          View = "cart"
)

type Overlay string

const (
	OverlayNone   Overlay = "none"
	OverlayLogin  Overlay = "login"
	OverlaySignup Overlay = "signup"
)

// ViewState is the resolved route: the active view plus any modal
// overlay. ProductID is set only for ViewProductDetail.
type ViewState struct {
	View      View
	Overlay   Overlay
	ProductID domain.ID
}

// Navigate resolves a route token against the current catalog. Tokens
// seen before the catalog finishes loading are parked and replayed by
// OnCatalogLoaded, so a product deep link on first load never runs
// against an empty catalog.
func (a *App) Navigate(token string) ViewState {
	if !a.Catalog.Loaded() {
		a.pending = token
		a.hasPending = true
		return a.view
	}
	a.view = a.resolve(token)
	return a.view
}

// OnCatalogLoaded replays a parked route, if any.
func (a *App) OnCatalogLoaded() ViewState {
	if a.hasPending {
		token := a.pending
		a.pending, a.hasPending = "", false
		a.view = a.resolve(token)
	}
	return a.view
}

// CurrentView returns the active route state.
func (a *App) CurrentView() ViewState { return a.view }

// resolve is the route transition function. Every branch sets the
// overlay explicitly, so entering any non-modal state closes an open
// modal.
func (a *App) resolve(token string) ViewState {
	switch {
	case token == "categories":
		return ViewState{View: ViewCategories, Overlay: OverlayNone}
	case token == "login":
		return ViewState{View: ViewHome, Overlay: OverlayLogin}
	case token == "signup":
		return ViewState{View: ViewHome, Overlay: OverlaySignup}
	case token == "cart":
		return ViewState{View: ViewCart, Overlay: OverlayNone}
	case strings.HasPrefix(token, "product="):
		id := domain.ID(strings.TrimPrefix(token, "product="))
		if _, ok := a.Catalog.Get(id); ok {
			return ViewState{View: ViewProductDetail, Overlay: OverlayNone, ProductID: id}
		}
		return ViewState{View: ViewHome, Overlay: OverlayNone}
	default:
		return ViewState{View: ViewHome, Overlay: OverlayNone}
	}
}
