package clients

import (
	"context"
	"net/http"
	"strconv"
)

type WishlistClient struct{ c *Client }

func NewWishlistClient(c *Client) *WishlistClient { return &WishlistClient{c: c} }

func (wc *WishlistClient) List(ctx context.Context) ([]Product, error) {
	var out []Product
	err := wc.c.DoJSON(ctx, http.MethodGet, "/v1/wishlist/list", "", nil, &out, nil)
	return out, err
}

func (wc *WishlistClient) Add(ctx context.Context, productID int64) error {
	return wc.c.DoJSON(ctx, http.MethodPost, "/v1/wishlist/add/"+strconv.FormatInt(productID, 10), "", nil, nil, nil)
}

func (wc *WishlistClient) Remove(ctx context.Context, productID int64) error {
	return wc.c.DoJSON(ctx, http.MethodDelete, "/v1/wishlist/remove/"+strconv.FormatInt(productID, 10), "", nil, nil, nil)
}
