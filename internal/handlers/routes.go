package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/tour-booking-api/internal/auth"
	"github.com/gdg-garage/tour-booking-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Auth         *AuthHandler
	Tours        *TourHandler
	Reservations *ReservationHandler
	// Discord is optional; its routes are only mounted when set.
	Discord *DiscordHandler
}

func RegisterRoutes(r chi.Router, cfg *config.Config, tokens *auth.TokenManager, h Handlers) huma.API {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(corsMiddleware(cfg.FrontendURL))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Tour Booking API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, humaConfig)

	protected := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"bearerAuth": {}}}
		o.Middlewares = append(o.Middlewares, tokens.Middleware(api))
	}
	created := func(o *huma.Operation) {
		o.DefaultStatus = http.StatusCreated
	}

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.Environment,
		})
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route not found")
	})

	// Auth routes
	huma.Post(api, "/api/auth/signup", h.Auth.HandleSignup, created)
	huma.Post(api, "/api/auth/login", h.Auth.HandleLogin)
	huma.Get(api, "/api/auth/profile", h.Auth.HandleProfile, protected)
	if h.Discord != nil {
		r.Get("/api/auth/discord/login", h.Discord.HandleLogin)
		r.Get("/api/auth/discord/callback", h.Discord.HandleCallback)
	}

	// Tour routes
	huma.Get(api, "/api/tours", h.Tours.HandleList)
	huma.Get(api, "/api/tours/creator/my-tours", h.Tours.HandleListMine, protected)
	huma.Get(api, "/api/tours/{id}", h.Tours.HandleGet)
	huma.Post(api, "/api/tours", h.Tours.HandleCreate, protected, created)
	huma.Put(api, "/api/tours/{id}", h.Tours.HandleUpdate, protected)
	huma.Delete(api, "/api/tours/{id}", h.Tours.HandleDelete, protected)

	// Reservation routes
	huma.Post(api, "/api/reservations", h.Reservations.HandleCreate, protected, created)
	huma.Get(api, "/api/reservations", h.Reservations.HandleList, protected)
	huma.Get(api, "/api/reservations/{id}", h.Reservations.HandleGet, protected)
	huma.Put(api, "/api/reservations/{id}/cancel", h.Reservations.HandleCancel, protected)
	huma.Put(api, "/api/reservations/{id}/status", h.Reservations.HandleUpdateStatus, protected)

	return api
}

func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
			w.Header().Set("Access-Control-Expose-Headers", auth.RefreshedTokenHeader)
			w.Header().Add("Vary", "Origin")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
