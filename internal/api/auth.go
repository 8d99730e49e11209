package api

import (
	"context"
	"fmt"

	domainauth "github.com/nutritrack/nutritrack/internal/domain/auth"
	apperrors "github.com/nutritrack/nutritrack/internal/errors"
)

// AuthClient talks to the backend authentication endpoints.
type AuthClient struct {
	gw *Gateway
}

// NewAuthClient constructs an AuthClient.
func NewAuthClient(gw *Gateway) *AuthClient {
	return &AuthClient{gw: gw}
}

// LoginResult is the backend's response to a successful login.
type LoginResult struct {
	Token string           `json:"token"`
	User  *domainauth.User `json:"user"`
}

// Login exchanges credentials for a bearer token and user identity.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperrors.Validation("username and password are required")
	}

	payload := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.gw.Post(ctx, "/auth/login", payload, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if result.Token == "" || result.User == nil {
		return nil, apperrors.Internal("login response missing token or user", nil)
	}
	return &result, nil
}

// RegisterInput carries the fields for account registration.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// Register creates a new account. The backend responds with a
// confirmation message; registration does not log the user in.
func (c *AuthClient) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", apperrors.Validation("username and password are required")
	}

	var result struct {
		Message string `json:"message"`
	}
	if err := c.gw.Post(ctx, "/auth/register", in, &result); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return result.Message, nil
}
