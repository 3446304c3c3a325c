package restapi

import (
	"context"
	"net/http"
	"time"

	"github.com/jackpyp/massage-shop-web/internal/models"
)

// --------- Requests ---------

type RegisterSubmission struct {
	Name     string
	Email    string
	Tel      string
	Password string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Tel       string `json:"tel"`
	Role      string `json:"role"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}

// --------- Calls ---------

// Login exchanges credentials for an opaque bearer token. The token is not
// inspected client-side.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := c.do(ctx, "", http.MethodPost, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register creates a platform account. Everyone self-registers as a plain
// user; admin accounts are provisioned elsewhere.
func (c *Client) Register(ctx context.Context, sub RegisterSubmission) error {
	return c.do(ctx, "", http.MethodPost, "/auth/register", registerRequest{
		Name:      sub.Name,
		Email:     sub.Email,
		Tel:       sub.Tel,
		Role:      models.RoleUser,
		Password:  sub.Password,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil)
}

// Me fetches the profile behind the token.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var out entityEnvelope[models.User]
	if err := c.do(ctx, token, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
