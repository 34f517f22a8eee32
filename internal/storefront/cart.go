package storefront

import (
	"context"
	"encoding/json"
	"fmt"

	"pricepeek/internal/domain"
)

// CartItems returns the cart lines in insertion order.
func (a *App) CartItems() []domain.CartItem { return a.cart }

// AddToCart appends one line. Refused without an active session; the
// cart is left untouched in that case. Duplicate lines are allowed.
func (a *App) AddToCart(ctx context.Context, item domain.CartItem) error {
	if a.session == nil {
		return domain.ErrNoSession
	}
	a.cart = append(a.cart, item)
	if err := a.persistCart(ctx); err != nil {
		a.cart = a.cart[:len(a.cart)-1]
		return err
	}
	return nil
}

// RemoveFromCart deletes the line at the given position, keeping the
// relative order of the rest.
func (a *App) RemoveFromCart(ctx context.Context, index int) error {
	if index < 0 || index >= len(a.cart) {
		return fmt.Errorf("cart index %d out of range", index)
	}
	removed := a.cart[index]
	a.cart = append(a.cart[:index], a.cart[index+1:]...)
	if err := a.persistCart(ctx); err != nil {
		// restore on persistence failure
		a.cart = append(a.cart[:index], append([]domain.CartItem{removed}, a.cart[index:]...)...)
		return err
	}
	return nil
}

// CartTotal sums the line prices.
func (a *App) CartTotal() float64 {
	total := 0.0
	for _, it := range a.cart {
		total += it.Price
	}
	return total
}

func (a *App) clearCart(ctx context.Context) error {
	a.cart = nil
	return a.store.Delete(ctx, cartKey)
}

func (a *App) persistCart(ctx context.Context) error {
	b, err := json.Marshal(a.cart)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, cartKey, b)
}
