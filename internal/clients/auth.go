package clients

import (
	"context"
	"net/http"

	"github.com/Hemachandram324/ecommerce-project/internal/session"
)

type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string       `json:"token"`
	UserID int64        `json:"userId"`
	Role   session.Role `json:"role"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

func (ac *AuthClient) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := ac.c.DoJSON(ctx, http.MethodPost, "/auth/login", "", req, &out, nil)
	return out, err
}

func (ac *AuthClient) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var out RegisterResponse
	err := ac.c.DoJSON(ctx, http.MethodPost, "/auth/register", "", req, &out, nil)
	return out, err
}
