// Package nav is the client-side page router: a closed set of pages of
// which exactly one is active, with session guards that run before any
// page data is loaded.
package nav

import (
	"context"
	"sync"

	"shopfront/internal/models"
	"shopfront/internal/notify"
	"shopfront/internal/state"

	"github.com/rs/zerolog"
)

type Page string

const (
	PageHome     Page = "home"
	PageProducts Page = "products"
	PageCart     Page = "cart"
	PageLogin    Page = "login"
	PageOrders   Page = "orders"
	PageCheckout Page = "checkout"
)

// Known reports whether name is one of the router's pages.
func Known(name string) bool {
	switch Page(name) {
	case PageHome, PageProducts, PageCart, PageLogin, PageOrders, PageCheckout:
		return true
	}
	return false
}

// Loader is the slice of the remote client the router's page loads use.
type Loader interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetCart(ctx context.Context, userID int) (*models.Cart, error)
	ListUserOrders(ctx context.Context, userID int) ([]models.Order, error)
}

type Router struct {
	mu       sync.Mutex
	active   Page
	appState *state.Store
	loader   Loader
	notifier notify.Notifier
	logger   zerolog.Logger
}

func NewRouter(appState *state.Store, loader Loader, notifier notify.Notifier, logger zerolog.Logger) *Router {
	return &Router{
		active:   PageHome,
		appState: appState,
		loader:   loader,
		notifier: notifier,
		logger:   logger,
	}
}

// Active returns the currently visible page.
func (r *Router) Active() Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Navigate switches to page and returns the page actually activated
// after guards. The switch itself is synchronous; the activated page's
// data load runs in the background.
func (r *Router) Navigate(ctx context.Context, page Page) Page {
	active, load := r.transition(ctx, page)
	if load != nil {
		go load()
	}
	return active
}

// NavigateWait is Navigate with the triggered load awaited, for callers
// that render the post-load state.
func (r *Router) NavigateWait(ctx context.Context, page Page) Page {
	active, load := r.transition(ctx, page)
	if load != nil {
		load()
	}
	return active
}

// transition applies guards, switches the active page and returns the
// load to run for the page that won.
func (r *Router) transition(ctx context.Context, page Page) (Page, func()) {
	sess := r.appState.Session()

	switch page {
	case PageCart, PageOrders, PageCheckout:
		if sess == nil {
			r.notifier.Error("Please login first")
			return r.activate(PageLogin), nil
		}
	}

	if page == PageCheckout && r.appState.Cart().Empty() {
		r.notifier.Error("Your cart is empty")
		page = PageCart
	}

	active := r.activate(page)

	switch active {
	case PageProducts:
		// Staleness is resolved by always refetching, never by reuse.
		return active, r.catalogLoad(ctx)
	case PageCart, PageCheckout:
		return active, r.cartLoad(ctx, sess.UserID)
	case PageOrders:
		return active, r.ordersLoad(ctx, sess.UserID)
	}
	return active, nil
}

func (r *Router) activate(page Page) Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = page
	return page
}

func (r *Router) catalogLoad(ctx context.Context) func() {
	tok := r.appState.BeginLoad(state.Catalog)
	return func() {
		products, err := r.loader.ListProducts(ctx)
		if err != nil {
			r.logger.Warn().Err(err).Msg("Catalog load failed")
			r.notifier.Error("Error loading products")
			return
		}
		if !r.appState.ApplyCatalog(tok, products) {
			r.logger.Debug().Msg("Discarded stale catalog load")
		}
	}
}

func (r *Router) cartLoad(ctx context.Context, userID int) func() {
	tok := r.appState.BeginLoad(state.CartView)
	return func() {
		cart, err := r.loader.GetCart(ctx, userID)
		if err != nil {
			r.logger.Warn().Err(err).Msg("Cart load failed")
			r.notifier.Error("Error loading cart")
			return
		}
		if !r.appState.ApplyCart(tok, cart) {
			r.logger.Debug().Msg("Discarded stale cart load")
		}
	}
}

func (r *Router) ordersLoad(ctx context.Context, userID int) func() {
	tok := r.appState.BeginLoad(state.OrderHistory)
	return func() {
		orders, err := r.loader.ListUserOrders(ctx, userID)
		if err != nil {
			r.logger.Warn().Err(err).Msg("Order history load failed")
			r.notifier.Error("Error loading orders")
			return
		}
		if !r.appState.ApplyOrders(tok, orders) {
			r.logger.Debug().Msg("Discarded stale order history load")
		}
	}
}
