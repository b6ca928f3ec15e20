package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"shopfront/internal/api"
	"shopfront/internal/config"
	"shopfront/internal/logger"
	"shopfront/internal/notify"
	"shopfront/internal/router"
	"shopfront/internal/session"
	"shopfront/internal/state"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Str("api", cfg.APIBaseURL).Msg("Starting storefront client")

	secret := cfg.SessionSecret
	if secret == "" {
		secret = "default-secret-key-change-in-production"
		log.Warn().Msg("SESSION_SECRET not set, using default key")
	}

	appState := state.NewStore()
	flash := notify.NewFlash()
	client := api.NewClient(cfg.APIBaseURL, log)
	sessions := session.NewStore(client, appState, secret, cfg.SessionFile, log)

	if sess := sessions.Restore(); sess != nil {
		log.Info().Str("username", sess.Username).Msg("Session restored")
	}

	r := router.SetupRouter(client, appState, sessions, flash, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("UI listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
