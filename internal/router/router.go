package router

import (
	"net/http"

	"shopfront/internal/api"
	"shopfront/internal/cart"
	"shopfront/internal/handlers"
	"shopfront/internal/middleware"
	"shopfront/internal/nav"
	"shopfront/internal/notify"
	"shopfront/internal/session"
	"shopfront/internal/state"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(client *api.Client, appState *state.Store, sessions *session.Store, flash *notify.Flash, logger zerolog.Logger) *mux.Router {
	pageRouter := nav.NewRouter(appState, client, flash, logger)
	cartVM := cart.NewViewModel(appState, client, flash, logger)

	shopHandler := handlers.NewShopHandler(pageRouter, appState, flash, logger)
	authHandler := handlers.NewAuthHandler(sessions, cartVM, pageRouter, appState, flash, logger)
	cartHandler := handlers.NewCartHandler(cartVM, pageRouter, flash, logger)
	adminHandler := handlers.NewAdminHandler(client, flash, handlers.FormConfirmer{}, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	r.HandleFunc("/", shopHandler.Home).Methods("GET")
	r.HandleFunc("/products", shopHandler.Products).Methods("GET")
	r.HandleFunc("/cart", shopHandler.Cart).Methods("GET")
	r.HandleFunc("/orders", shopHandler.Orders).Methods("GET")
	r.HandleFunc("/checkout", shopHandler.Checkout).Methods("GET")

	r.HandleFunc("/login", authHandler.ShowLogin).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	r.HandleFunc("/cart/add", cartHandler.Add).Methods("POST")
	r.HandleFunc("/cart/remove", cartHandler.Remove).Methods("POST")
	r.HandleFunc("/checkout", cartHandler.PlaceOrder).Methods("POST")

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminGate(appState, flash, logger))
	admin.HandleFunc("", adminHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}/stock", adminHandler.UpdateStock).Methods("POST")
	admin.HandleFunc("/products/{id}/delete", adminHandler.DeleteProduct).Methods("POST")
	admin.HandleFunc("/export/users.csv", adminHandler.ExportUsers).Methods("GET")
	admin.HandleFunc("/export/orders.csv", adminHandler.ExportOrders).Methods("GET")
	admin.HandleFunc("/export/products.csv", adminHandler.ExportProducts).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
