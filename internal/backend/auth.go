package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pricofy/image-translator/internal/domain"
)

// Signup creates an account.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (*domain.MessageResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	var out domain.MessageResponse
	r := c.request(ctx).SetHeader("Content-Type", "application/json").SetBody(req)
	if err := do(r, http.MethodPost, "/api/signup", "Signup", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates by username or email. On success the returned token
// is also installed on the client.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if req.Name == "" || req.Password == "" {
		return nil, fmt.Errorf("name and password are required")
	}

	var out domain.LoginResponse
	r := c.request(ctx).SetHeader("Content-Type", "application/json").SetBody(req)
	if err := do(r, http.MethodPost, "/api/login", "Login", &out); err != nil {
		return nil, err
	}

	c.SetToken(out.Token)
	return &out, nil
}

// Logout ends the session server-side and drops the client's token.
func (c *Client) Logout(ctx context.Context) (*domain.MessageResponse, error) {
	var out domain.MessageResponse
	r := c.request(ctx).SetHeader("Content-Type", "application/json")
	if err := do(r, http.MethodPost, "/api/logout", "Logout", &out); err != nil {
		return nil, err
	}

	c.SetToken("")
	return &out, nil
}

// Status reports whether the current token belongs to a logged-in user.
func (c *Client) Status(ctx context.Context) (*domain.StatusResponse, error) {
	var out domain.StatusResponse
	if err := do(c.request(ctx), http.MethodGet, "/api/status", "Status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
