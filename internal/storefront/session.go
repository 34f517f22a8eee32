package storefront

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"pricepeek/internal/domain"
)

// Login records the authenticated identity. The caller is expected to
// have verified credentials against the auth API first.
func (a *App) Login(ctx context.Context, username string) (domain.Session, error) {
	s := domain.Session{Username: username, Token: uuid.NewString()}
	b, err := json.Marshal(s)
	if err != nil {
		return domain.Session{}, err
	}
	if err := a.store.Set(ctx, sessionKey, b); err != nil {
		return domain.Session{}, err
	}
	a.session = &s
	return s, nil
}

// Logout destroys the session and empties the cart.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx, sessionKey); err != nil {
		return err
	}
	a.session = nil
	return a.clearCart(ctx)
}

// Session returns the active identity, if any.
func (a *App) Session() (domain.Session, bool) {
	if a.session == nil {
		return domain.Session{}, false
	}
	return *a.session, true
}
