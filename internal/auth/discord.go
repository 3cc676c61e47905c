package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gdg-garage/tour-booking-api/internal/config"
	"golang.org/x/oauth2"
)

const (
	DiscordAuthorizeEndpoint = "https://discord.com/api/oauth2/authorize"
	DiscordTokenEndpoint     = "https://discord.com/api/oauth2/token"
	DiscordUserAPI           = "https://discord.com/api/users/@me"
)

var ErrNoVerifiedEmail = errors.New("discord account has no verified email")

type DiscordProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// DiscordOAuth runs the authorization code flow against Discord and reads
// the signed-in user's profile.
type DiscordOAuth struct {
	oauthConfig *oauth2.Config
	userAPI     string
}

func NewDiscordOAuth(cfg *config.Config) *DiscordOAuth {
	return &DiscordOAuth{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURL,
			Scopes:       []string{"identify", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  DiscordAuthorizeEndpoint,
				TokenURL: DiscordTokenEndpoint,
			},
		},
		userAPI: DiscordUserAPI,
	}
}

func (d *DiscordOAuth) AuthCodeURL(state string) string {
	return d.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchProfile exchanges code for a token and returns the Discord user.
func (d *DiscordOAuth) FetchProfile(ctx context.Context, code string) (*DiscordProfile, error) {
	token, err := d.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange token: %w", err)
	}

	client := d.oauthConfig.Client(ctx, token)
	resp, err := client.Get(d.userAPI)
	if err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get user info: unexpected status %d", resp.StatusCode)
	}

	var profile DiscordProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	if profile.Email == "" || !profile.Verified {
		return nil, ErrNoVerifiedEmail
	}
	return &profile, nil
}

// NewState returns a random value for the OAuth state parameter.
func NewState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
