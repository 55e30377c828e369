package clients

import (
	"context"
	"net/http"
	"strconv"
)

type CartClient struct{ c *Client }

func NewCartClient(c *Client) *CartClient { return &CartClient{c: c} }

type AddCartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (cc *CartClient) Get(ctx context.Context) (Cart, error) {
	var out Cart
	err := cc.c.DoJSON(ctx, http.MethodGet, "/v1/carts", "", nil, &out, nil)
	return out, err
}

func (cc *CartClient) AddItem(ctx context.Context, req AddCartItemRequest) (Cart, error) {
	var out Cart
	err := cc.c.DoJSON(ctx, http.MethodPost, "/v1/carts/items", "", req, &out, nil)
	return out, err
}

func (cc *CartClient) UpdateItem(ctx context.Context, itemID int64, req UpdateCartItemRequest) (Cart, error) {
	var out Cart
	err := cc.c.DoJSON(ctx, http.MethodPut, "/v1/carts/items/"+strconv.FormatInt(itemID, 10), "", req, &out, nil)
	return out, err
}

func (cc *CartClient) RemoveItem(ctx context.Context, itemID int64) (Cart, error) {
	var out Cart
	err := cc.c.DoJSON(ctx, http.MethodDelete, "/v1/carts/items/"+strconv.FormatInt(itemID, 10), "", nil, &out, nil)
	return out, err
}

func (cc *CartClient) Clear(ctx context.Context) error {
	return cc.c.DoJSON(ctx, http.MethodDelete, "/v1/carts", "", nil, nil, nil)
}
