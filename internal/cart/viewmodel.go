// Package cart implements the cart view-model: every mutation is a
// remote round trip whose returned cart replaces the local snapshot
// wholesale. The snapshot is never merged and never changes on failure.
package cart

import (
	"context"
	"errors"

	"shopfront/internal/api"
	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/state"

	"github.com/rs/zerolog"
)

// Local validation failures, caught before any remote call is made.
var (
	ErrNotLoggedIn  = errors.New("login required")
	ErrBadQuantity  = errors.New("quantity must be at least 1")
	ErrExceedsStock = errors.New("quantity exceeds available stock")
	ErrEmptyCart    = errors.New("cart is empty")
)

// Remote is the slice of the remote client the view-model uses.
type Remote interface {
	GetCart(ctx context.Context, userID int) (*models.Cart, error)
	AddToCart(ctx context.Context, userID int, req models.AddToCartRequest) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID int) (*models.Cart, error)
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) error
}

type ViewModel struct {
	appState *state.Store
	remote   Remote
	notifier notify.Notifier
	logger   zerolog.Logger
}

func NewViewModel(appState *state.Store, remote Remote, notifier notify.Notifier, logger zerolog.Logger) *ViewModel {
	return &ViewModel{
		appState: appState,
		remote:   remote,
		notifier: notifier,
		logger:   logger,
	}
}

// Add puts quantity units of a product into the cart. The stock bound
// from the catalog snapshot is checked first, but only as an advisory
// gate: the server's verdict is final either way.
func (v *ViewModel) Add(ctx context.Context, productID, quantity int) error {
	sess := v.appState.Session()
	if sess == nil {
		v.notifier.Error("Please login first")
		return ErrNotLoggedIn
	}
	if quantity < 1 {
		v.notifier.Error("Quantity must be at least 1")
		return ErrBadQuantity
	}
	if p, ok := v.appState.ProductByID(productID); ok && quantity > p.StockQuantity {
		v.notifier.Error("Not enough stock available")
		return ErrExceedsStock
	}

	cart, err := v.remote.AddToCart(ctx, sess.UserID, models.AddToCartRequest{
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		v.report(err, "Error adding to cart")
		return err
	}

	v.appState.ReplaceCart(cart)
	v.notifier.Success("Added to cart!")
	return nil
}

// Remove deletes a product line from the cart.
func (v *ViewModel) Remove(ctx context.Context, productID int) error {
	sess := v.appState.Session()
	if sess == nil {
		v.notifier.Error("Please login first")
		return ErrNotLoggedIn
	}

	cart, err := v.remote.RemoveFromCart(ctx, sess.UserID, productID)
	if err != nil {
		v.report(err, "Error removing item")
		return err
	}

	v.appState.ReplaceCart(cart)
	v.notifier.Success("Item removed")
	return nil
}

// Load fetches the current cart for the active session and replaces the
// snapshot on success.
func (v *ViewModel) Load(ctx context.Context) error {
	sess := v.appState.Session()
	if sess == nil {
		return ErrNotLoggedIn
	}

	tok := v.appState.BeginLoad(state.CartView)
	cart, err := v.remote.GetCart(ctx, sess.UserID)
	if err != nil {
		v.report(err, "Error loading cart")
		return err
	}
	v.appState.ApplyCart(tok, cart)
	return nil
}

// Checkout places the order as one atomic remote call. On success the
// cart snapshot is cleared; the caller navigates to order history.
func (v *ViewModel) Checkout(ctx context.Context, shippingAddress, paymentMethod string) error {
	sess := v.appState.Session()
	if sess == nil {
		v.notifier.Error("Please login first")
		return ErrNotLoggedIn
	}
	if v.appState.Cart().Empty() {
		v.notifier.Error("Your cart is empty")
		return ErrEmptyCart
	}

	err := v.remote.PlaceOrder(ctx, models.PlaceOrderRequest{
		UserID:          sess.UserID,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
	})
	if err != nil {
		v.report(err, "Error placing order")
		return err
	}

	v.appState.ClearCart()
	v.notifier.Success("Order placed successfully!")
	return nil
}

// report surfaces a remote failure, preferring the server's own message
// over the fixed fallback.
func (v *ViewModel) report(err error, fallback string) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Kind == api.ErrRemote && apiErr.Message != "" {
		v.notifier.Error(apiErr.Message)
		return
	}
	v.notifier.Error(fallback)
}
