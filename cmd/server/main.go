package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/tour-booking-api/internal/auth"
	"github.com/gdg-garage/tour-booking-api/internal/config"
	"github.com/gdg-garage/tour-booking-api/internal/database"
	"github.com/gdg-garage/tour-booking-api/internal/handlers"
	"github.com/gdg-garage/tour-booking-api/internal/notifier"
	"github.com/gdg-garage/tour-booking-api/internal/service"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	// Initialize Notifier
	var reservationNotifier notifier.Notifier = notifier.Noop{}
	discordNotifier, err := notifier.NewDiscordNotifier(cfg)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		reservationNotifier = discordNotifier
	}

	// Initialize Services
	authService := service.NewAuthService(db, tokens)
	tourService := service.NewTourService(db)
	reservationService := service.NewReservationService(db, reservationNotifier)

	// Initialize Handlers
	h := handlers.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Tours:        handlers.NewTourHandler(tourService),
		Reservations: handlers.NewReservationHandler(reservationService),
	}
	if cfg.DiscordLoginEnabled() {
		h.Discord = handlers.NewDiscordHandler(auth.NewDiscordOAuth(cfg), authService)
	} else {
		log.Printf("Discord login disabled: DISCORD_CLIENT_ID or DISCORD_CLIENT_SECRET not set")
	}

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, tokens, h)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting server on port %s (%s)", cfg.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
