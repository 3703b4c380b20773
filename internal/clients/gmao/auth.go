package gmao

import (
	"context"
	"net/http"

	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

// AuthResponse covers both register outcomes: immediate activation
// carries a credential and a user; pending approval carries a message
// only.
type AuthResponse struct {
	AccessToken     string      `json:"access_token"`
	TokenType       string      `json:"token_type"`
	User            entity.User `json:"user"`
	PendingApproval bool        `json:"pending_approval"`
	Message         string      `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse

	err := c.do(ctx, http.MethodPost, "/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return AuthResponse{}, err
	}

	return resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var resp AuthResponse

	err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp)
	if err != nil {
		return AuthResponse{}, err
	}

	return resp, nil
}

// Me validates the current credential against the server and returns the
// identity it belongs to.
func (c *Client) Me(ctx context.Context) (entity.User, error) {
	var user entity.User

	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user)
	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}
