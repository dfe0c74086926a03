package api

import (
	"context"

	"github.com/Jaymi-01/framez/pkg/logger"
)

// Register creates an account and returns its first session
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	logger.Debug("Registering", "email", req.Email)

	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/v1/auth/register")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	logger.Debug("Logging in", "email", req.Email)

	var out AuthResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/v1/auth/login")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout ends the session. The result reports whether the server revoked the
// token or only acknowledged the request.
func (c *Client) Logout(ctx context.Context) (bool, error) {
	var out logoutResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post("/api/v1/auth/logout")
	if err := CheckResponse(resp, err); err != nil {
		return false, err
	}
	return out.Revoked, nil
}

// Me returns the session user
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/v1/users/me")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
