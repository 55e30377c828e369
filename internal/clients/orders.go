package clients

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Hemachandram324/ecommerce-project/internal/orders"
)

type OrderClient struct{ c *Client }

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

type UpdateStatusRequest struct {
	Status orders.Status `json:"status"`
}

func (oc *OrderClient) ListMine(ctx context.Context) ([]Order, error) {
	var out []Order
	err := oc.c.DoJSON(ctx, http.MethodGet, "/orders/user", "", nil, &out, nil)
	return out, err
}

func (oc *OrderClient) Get(ctx context.Context, orderID int64) (Order, error) {
	var out Order
	err := oc.c.DoJSON(ctx, http.MethodGet, "/orders/order/"+strconv.FormatInt(orderID, 10), "", nil, &out, nil)
	return out, err
}

func (oc *OrderClient) ListAll(ctx context.Context) ([]Order, error) {
	var out []Order
	err := oc.c.DoJSON(ctx, http.MethodGet, "/orders/admin", "", nil, &out, nil)
	return out, err
}

func (oc *OrderClient) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	var out []Order
	err := oc.c.DoJSON(ctx, http.MethodGet, "/orders/admin/user/"+strconv.FormatInt(userID, 10), "", nil, &out, nil)
	return out, err
}

func (oc *OrderClient) UpdateStatus(ctx context.Context, orderID int64, status orders.Status) (Order, error) {
	var out Order
	err := oc.c.DoJSON(ctx, http.MethodPost, "/orders/"+strconv.FormatInt(orderID, 10)+"/status", "", UpdateStatusRequest{Status: status}, &out, nil)
	return out, err
}

func (oc *OrderClient) Delete(ctx context.Context, orderID int64) error {
	return oc.c.DoJSON(ctx, http.MethodDelete, "/orders/"+strconv.FormatInt(orderID, 10), "", nil, nil, nil)
}
