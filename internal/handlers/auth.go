package handlers

import (
	"context"
	"regexp"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-booking-api/internal/models"
	"github.com/gdg-garage/tour-booking-api/internal/service"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService interface {
	Signup(ctx context.Context, input service.SignupInput) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	ExternalLogin(ctx context.Context, email, name string) (*service.AuthResult, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type SignupRequest struct {
	Body struct {
		Email    string `json:"email,omitempty" doc:"Account email, must be unique"`
		Password string `json:"password,omitempty" doc:"At least 6 characters"`
		Name     string `json:"name,omitempty" doc:"Display name"`
	}
}

type LoginRequest struct {
	Body struct {
		Email    string `json:"email,omitempty"`
		Password string `json:"password,omitempty"`
	}
}

type AuthResponse struct {
	Body struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
		Token   string      `json:"token"`
	}
}

func newAuthResponse(message string, result *service.AuthResult) *AuthResponse {
	res := &AuthResponse{}
	res.Body.Message = message
	res.Body.User = result.User
	res.Body.Token = result.Token
	return res
}

func (h *AuthHandler) HandleSignup(ctx context.Context, input *SignupRequest) (*AuthResponse, error) {
	body := input.Body
	if body.Email == "" || body.Password == "" || body.Name == "" {
		return nil, huma.Error400BadRequest("Email, password, and name are required")
	}
	if !emailPattern.MatchString(body.Email) {
		return nil, huma.Error400BadRequest("Invalid email format")
	}
	if len(body.Password) < 6 {
		return nil, huma.Error400BadRequest("Password must be at least 6 characters long")
	}

	result, err := h.auth.Signup(ctx, service.SignupInput{
		Email:    body.Email,
		Password: body.Password,
		Name:     body.Name,
	})
	if err != nil {
		return nil, serviceError(err)
	}

	return newAuthResponse("User created successfully", result), nil
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*AuthResponse, error) {
	if input.Body.Email == "" || input.Body.Password == "" {
		return nil, huma.Error400BadRequest("Email and password are required")
	}

	result, err := h.auth.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, serviceError(err)
	}

	return newAuthResponse("Login successful", result), nil
}

type ProfileResponse struct {
	Body struct {
		User models.User `json:"user"`
	}
}

func (h *AuthHandler) HandleProfile(ctx context.Context, _ *struct{}) (*ProfileResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.auth.Profile(ctx, userID)
	if err != nil {
		return nil, serviceError(err)
	}

	res := &ProfileResponse{}
	res.Body.User = *user
	return res, nil
}
