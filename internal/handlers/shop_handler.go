package handlers

import (
	"html/template"
	"net/http"

	"shopfront/internal/nav"
	"shopfront/internal/notify"
	"shopfront/internal/render"
	"shopfront/internal/state"

	"github.com/rs/zerolog"
)

// ShopHandler serves the storefront pages. Each request navigates the
// page router, waits for the page's data load, and renders the
// resulting snapshot; a guard redirect is answered with an HTTP
// redirect to the page that won.
type ShopHandler struct {
	router   *nav.Router
	appState *state.Store
	flash    *notify.Flash
	logger   zerolog.Logger
}

func NewShopHandler(router *nav.Router, appState *state.Store, flash *notify.Flash, logger zerolog.Logger) *ShopHandler {
	return &ShopHandler{
		router:   router,
		appState: appState,
		flash:    flash,
		logger:   logger,
	}
}

func (h *ShopHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.router.NavigateWait(r.Context(), nav.PageHome)
	body := template.HTML(`<p class="hero">Welcome to Shopfront. <a href="/products">Browse products</a>.</p>`)
	writeDocument(w, h.appState, h.flash, nav.PageHome, "Home", body)
}

func (h *ShopHandler) Products(w http.ResponseWriter, r *http.Request) {
	h.router.NavigateWait(r.Context(), nav.PageProducts)
	body := render.ProductGrid(h.appState.Catalog())
	writeDocument(w, h.appState, h.flash, nav.PageProducts, "Products", body)
}

func (h *ShopHandler) Cart(w http.ResponseWriter, r *http.Request) {
	page := h.router.NavigateWait(r.Context(), nav.PageCart)
	if page != nav.PageCart {
		http.Redirect(w, r, pagePath(page), http.StatusSeeOther)
		return
	}
	body := render.CartView(h.appState.Cart())
	writeDocument(w, h.appState, h.flash, nav.PageCart, "Your Cart", body)
}

func (h *ShopHandler) Orders(w http.ResponseWriter, r *http.Request) {
	page := h.router.NavigateWait(r.Context(), nav.PageOrders)
	if page != nav.PageOrders {
		http.Redirect(w, r, pagePath(page), http.StatusSeeOther)
		return
	}
	body := render.OrderHistory(h.appState.Orders())
	writeDocument(w, h.appState, h.flash, nav.PageOrders, "Order History", body)
}

func (h *ShopHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	page := h.router.NavigateWait(r.Context(), nav.PageCheckout)
	if page != nav.PageCheckout {
		http.Redirect(w, r, pagePath(page), http.StatusSeeOther)
		return
	}
	body := render.CheckoutView(h.appState.Cart())
	writeDocument(w, h.appState, h.flash, nav.PageCheckout, "Checkout", body)
}
