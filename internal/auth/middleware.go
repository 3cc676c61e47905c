package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
)

// RefreshedTokenHeader carries a renewed token once the presented one is
// past half of its lifetime.
const RefreshedTokenHeader = "X-Refreshed-Token"

// Middleware returns a huma middleware that requires a valid bearer token
// and stores the caller's user ID and email in the request context.
func (m *TokenManager) Middleware(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := m.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		// Sliding session
		if claims.ExpiresAt != nil && claims.ExpiresAt.Sub(m.now()) < m.duration/2 {
			if token, err := m.GenerateToken(claims.UserID, claims.Email); err == nil {
				ctx.SetHeader(RefreshedTokenHeader, token)
			}
		}

		ctx = huma.WithValue(ctx, UserIDKey, claims.UserID)
		ctx = huma.WithValue(ctx, EmailKey, claims.Email)
		next(ctx)
	}
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
