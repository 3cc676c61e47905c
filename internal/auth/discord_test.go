package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gdg-garage/tour-booking-api/internal/config"
)

func newDiscordStub(t *testing.T, profile string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"discord-token","token_type":"Bearer"}`))
	})
	mux.HandleFunc("/users/@me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer discord-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(profile))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newStubbedOAuth(server *httptest.Server) *DiscordOAuth {
	d := NewDiscordOAuth(&config.Config{
		DiscordClientID:     "client-id",
		DiscordClientSecret: "client-secret",
		DiscordRedirectURL:  "http://localhost/callback",
	})
	d.oauthConfig.Endpoint.TokenURL = server.URL + "/token"
	d.userAPI = server.URL + "/users/@me"
	return d
}

func TestDiscordOAuth_AuthCodeURL(t *testing.T) {
	d := NewDiscordOAuth(&config.Config{DiscordClientID: "client-id", DiscordRedirectURL: "http://localhost/callback"})

	raw := d.AuthCodeURL("state-123")
	if !strings.HasPrefix(raw, DiscordAuthorizeEndpoint) {
		t.Fatalf("unexpected authorize URL %s", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse URL: %v", err)
	}
	if got := u.Query().Get("client_id"); got != "client-id" {
		t.Errorf("expected client_id client-id, got %s", got)
	}
	if got := u.Query().Get("state"); got != "state-123" {
		t.Errorf("expected state state-123, got %s", got)
	}
}

func TestDiscordOAuth_FetchProfile(t *testing.T) {
	t.Run("Verified", func(t *testing.T) {
		server := newDiscordStub(t, `{"id":"42","username":"traveller","email":"t@example.com","verified":true}`)
		profile, err := newStubbedOAuth(server).FetchProfile(context.Background(), "code")
		if err != nil {
			t.Fatalf("FetchProfile returned error: %v", err)
		}
		if profile.Email != "t@example.com" || profile.Username != "traveller" {
			t.Errorf("unexpected profile %+v", profile)
		}
	})

	t.Run("Unverified", func(t *testing.T) {
		server := newDiscordStub(t, `{"id":"42","username":"traveller","email":"t@example.com","verified":false}`)
		_, err := newStubbedOAuth(server).FetchProfile(context.Background(), "code")
		if !errors.Is(err, ErrNoVerifiedEmail) {
			t.Errorf("expected ErrNoVerifiedEmail, got %v", err)
		}
	})
}

func TestNewState(t *testing.T) {
	a, err := NewState()
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	b, _ := NewState()
	if a == b || len(a) != 32 {
		t.Errorf("expected distinct 32-char states, got %q and %q", a, b)
	}
}
