package clients

import (
	"context"
	"net/http"
)

type UserClient struct{ c *Client }

func NewUserClient(c *Client) *UserClient { return &UserClient{c: c} }

func (uc *UserClient) List(ctx context.Context) ([]User, error) {
	var out []User
	err := uc.c.DoJSON(ctx, http.MethodGet, "/users", "", nil, &out, nil)
	return out, err
}
