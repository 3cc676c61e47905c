package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gdg-garage/tour-booking-api/internal/auth"
)

const oauthStateCookie = "oauth_state"

type DiscordOAuth interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*auth.DiscordProfile, error)
}

// DiscordHandler signs users in with their Discord account. Accounts are
// matched by verified email.
type DiscordHandler struct {
	oauth DiscordOAuth
	auth  AuthService
}

func NewDiscordHandler(oauth DiscordOAuth, auth AuthService) *DiscordHandler {
	return &DiscordHandler{oauth: oauth, auth: auth}
}

func (h *DiscordHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := auth.NewState()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to start login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *DiscordHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeMessage(w, http.StatusBadRequest, "Code not found")
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		writeMessage(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}

	profile, err := h.oauth.FetchProfile(r.Context(), code)
	if errors.Is(err, auth.ErrNoVerifiedEmail) {
		writeMessage(w, http.StatusForbidden, "Access denied: Discord account has no verified email")
		return
	}
	if err != nil {
		log.Printf("Discord login failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to get user info")
		return
	}

	result, err := h.auth.ExternalLogin(r.Context(), profile.Email, profile.Username)
	if err != nil {
		log.Printf("Discord login failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", MaxAge: -1, Path: "/"})
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write json failed: status=%d err=%v", status, err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
