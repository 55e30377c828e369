package clients

import (
	"context"
	"net/http"
)

const headerIdempotencyKey = "Idempotency-Key"

type PaymentClient struct{ c *Client }

func NewPaymentClient(c *Client) *PaymentClient { return &PaymentClient{c: c} }

type PaymentIntentRequest struct {
	// Amount in the currency's minor unit (cents).
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	PaymentMethodID string `json:"paymentMethodId,omitempty"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type CheckoutItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CheckoutRequest struct {
	PaymentIntentID string          `json:"paymentIntentId"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []CheckoutItem  `json:"items"`
}

type CheckoutResponse struct {
	OrderID int64 `json:"orderId"`
}

func (pc *PaymentClient) CreateIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntentResponse, error) {
	var out PaymentIntentResponse
	err := pc.c.DoJSON(ctx, http.MethodPost, "/payment/create-payment-intent", "", req, &out, nil)
	return out, err
}

// Checkout creates the order for a confirmed payment. idempotencyKey is
// client-generated, one per checkout context, so a retried submission cannot
// create a second order.
func (pc *PaymentClient) Checkout(ctx context.Context, req CheckoutRequest, idempotencyKey string) (CheckoutResponse, error) {
	headers := http.Header{}
	if idempotencyKey != "" {
		headers.Set(headerIdempotencyKey, idempotencyKey)
	}
	var out CheckoutResponse
	err := pc.c.DoJSON(ctx, http.MethodPost, "/payment/checkout", "", req, &out, headers)
	return out, err
}
