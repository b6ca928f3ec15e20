package handlers

import (
	"errors"
	"net/http"
	"strings"

	"shopfront/internal/cart"
	"shopfront/internal/nav"
	"shopfront/internal/notify"

	"github.com/rs/zerolog"
)

type CartHandler struct {
	cartVM *cart.ViewModel
	router *nav.Router
	flash  *notify.Flash
	logger zerolog.Logger
}

func NewCartHandler(cartVM *cart.ViewModel, router *nav.Router, flash *notify.Flash, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartVM: cartVM,
		router: router,
		flash:  flash,
		logger: logger,
	}
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID, ok := formInt(r, "product_id")
	if !ok {
		h.flash.Error("Invalid product")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	quantity, ok := formInt(r, "quantity")
	if !ok || quantity < 1 {
		// Local validation: rejected before any remote call is issued.
		h.flash.Error("Quantity must be at least 1")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}

	err := h.cartVM.Add(r.Context(), productID, quantity)
	if errors.Is(err, cart.ErrNotLoggedIn) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, ok := formInt(r, "product_id")
	if !ok {
		h.flash.Error("Invalid product")
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	err := h.cartVM.Remove(r.Context(), productID)
	if errors.Is(err, cart.ErrNotLoggedIn) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	shippingAddress := strings.TrimSpace(r.PostFormValue("shipping_address"))
	paymentMethod := r.PostFormValue("payment_method")
	if shippingAddress == "" {
		h.flash.Error("Shipping address is required")
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	err := h.cartVM.Checkout(r.Context(), shippingAddress, paymentMethod)
	switch {
	case errors.Is(err, cart.ErrNotLoggedIn):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, cart.ErrEmptyCart):
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
	case err != nil:
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
	default:
		// Success lands on order history, freshly reloaded.
		h.router.Navigate(r.Context(), nav.PageOrders)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
	}
}
