package handlers

import (
	"context"
	"errors"
	"net/http"

	"shopfront/internal/api"
	"shopfront/internal/cart"
	"shopfront/internal/models"
	"shopfront/internal/nav"
	"shopfront/internal/notify"
	"shopfront/internal/render"
	"shopfront/internal/state"

	"github.com/rs/zerolog"
)

// SessionStore is the slice of the session store the handler needs.
type SessionStore interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout()
}

type AuthHandler struct {
	sessions SessionStore
	cartVM   *cart.ViewModel
	router   *nav.Router
	appState *state.Store
	flash    *notify.Flash
	logger   zerolog.Logger
}

func NewAuthHandler(sessions SessionStore, cartVM *cart.ViewModel, router *nav.Router, appState *state.Store, flash *notify.Flash, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		cartVM:   cartVM,
		router:   router,
		appState: appState,
		flash:    flash,
		logger:   logger,
	}
}

// ShowLogin renders the login page. A username query parameter
// pre-fills the login form after a successful registration.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.router.NavigateWait(r.Context(), nav.PageLogin)
	forms := render.AuthForms{
		RegisterActive: r.URL.Query().Get("tab") == "register",
		Username:       r.URL.Query().Get("username"),
	}
	writeDocument(w, h.appState, h.flash, nav.PageLogin, "Login", render.AuthView(forms))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.sessions.Login(r.Context(), username, password)
	if err != nil {
		// Failures stay inline on the form, matching the login page's
		// error slot rather than the toast.
		forms := render.AuthForms{Username: username, LoginError: inlineMessage(err)}
		writeDocument(w, h.appState, h.flash, nav.PageLogin, "Login", render.AuthView(forms))
		return
	}

	// The cart badge follows the session immediately after login.
	if err := h.cartVM.Load(r.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("Cart load after login failed")
	}

	h.flash.Success("Login successful!")
	h.router.Navigate(r.Context(), nav.PageProducts)
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := models.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		FullName: r.PostFormValue("full_name"),
	}

	if err := h.sessions.Register(r.Context(), req); err != nil {
		forms := render.AuthForms{RegisterActive: true, RegisterError: inlineMessage(err)}
		writeDocument(w, h.appState, h.flash, nav.PageLogin, "Login", render.AuthView(forms))
		return
	}

	h.flash.Success("Registration successful! Please login.")
	http.Redirect(w, r, "/login?username="+req.Username, http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout()
	h.flash.Success("Logged out successfully")
	h.router.Navigate(r.Context(), nav.PageHome)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// inlineMessage prefers the server's own error wording when the remote
// supplied one.
func inlineMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "Connection error. Please try again."
}
