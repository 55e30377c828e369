// Package checkout orchestrates the payment-then-order flow: fetch the cart
// or a single-product context, create a payment intent through the backend,
// confirm it with the payment provider, and only then submit the order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Hemachandram324/ecommerce-project/internal/cart"
	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/payment"
)

var (
	ErrEmptyCart  = errors.New("cart is empty, nothing to check out")
	ErrNoContext  = errors.New("checkout context not loaded")
	ErrInProgress = errors.New("a submission is already in progress")
)

type Line struct {
	ProductID int64
	Name      string
	Quantity  int
	Price     decimal.Decimal
}

// Context is what the checkout form shows: the lines being bought and the
// server-reported total. For buy-now it is an ephemeral one-item cart that
// never touches the server cart.
type Context struct {
	Lines  []Line
	Total  decimal.Decimal
	BuyNow bool
}

type Orchestrator struct {
	payments  *clients.PaymentClient
	confirmer payment.Confirmer
	cart      *cart.Synchronizer
	catalog   *clients.CatalogClient
	log       *slog.Logger

	state   State
	context *Context
	// One key per loaded context: a double submit or retry of the same
	// checkout cannot create a second order.
	idempotencyKey string
	orderID        int64
	lastErr        error
}

func NewOrchestrator(
	payments *clients.PaymentClient,
	confirmer payment.Confirmer,
	cartSync *cart.Synchronizer,
	catalog *clients.CatalogClient,
	log *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		payments:  payments,
		confirmer: confirmer,
		cart:      cartSync,
		catalog:   catalog,
		log:       log,
		state:     StateLoadingContext,
	}
}

func (o *Orchestrator) State() State      { return o.state }
func (o *Orchestrator) Context() *Context { return o.context }
func (o *Orchestrator) OrderID() int64    { return o.orderID }
func (o *Orchestrator) LastErr() error    { return o.lastErr }

// LoadCartContext fetches the server cart as the checkout context.
func (o *Orchestrator) LoadCartContext(ctx context.Context) error {
	o.state = StateLoadingContext

	view, err := o.cart.Fetch(ctx)
	if err != nil {
		return o.fail(fmt.Errorf("load checkout context: %w", err))
	}
	if view.Empty() {
		return o.fail(ErrEmptyCart)
	}

	lines := make([]Line, len(view.Items))
	for i, it := range view.Items {
		lines[i] = Line{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, Price: it.Price}
	}

	o.setContext(&Context{Lines: lines, Total: view.Total})
	return nil
}

// LoadBuyNowContext builds an ephemeral one-item context from a single
// product, bypassing the server cart entirely.
func (o *Orchestrator) LoadBuyNowContext(ctx context.Context, productID int64) error {
	o.state = StateLoadingContext

	p, err := o.catalog.GetProduct(ctx, productID)
	if err != nil {
		return o.fail(fmt.Errorf("load product for buy-now: %w", err))
	}

	o.setContext(&Context{
		Lines:  []Line{{ProductID: p.ID, Name: p.Name, Quantity: 1, Price: p.Price}},
		Total:  p.Price,
		BuyNow: true,
	})
	return nil
}

func (o *Orchestrator) setContext(c *Context) {
	o.context = c
	o.idempotencyKey = uuid.NewString()
	o.state = StateAwaitingPaymentMethod
	o.lastErr = nil
}

// Submit runs payment then order creation. The order-creation call is only
// reached after the provider confirmed the payment; any earlier failure
// leaves the form editable with no order created.
func (o *Orchestrator) Submit(ctx context.Context, card payment.Card, addr clients.ShippingAddress) (int64, error) {
	switch o.state {
	case StateAwaitingPaymentMethod, StateFailed:
	case StateSubmittingPayment, StateAwaitingOrderConfirmation:
		return 0, ErrInProgress
	default:
		return 0, ErrNoContext
	}
	if o.context == nil {
		return 0, ErrNoContext
	}
	if err := validateAddress(addr); err != nil {
		return 0, o.fail(err)
	}
	if err := card.Validate(); err != nil {
		return 0, o.fail(err)
	}

	o.state = StateSubmittingPayment

	// Amount is the server-reported total converted to cents; no line
	// arithmetic happens client-side.
	amount := o.context.Total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	intent, err := o.payments.CreateIntent(ctx, clients.PaymentIntentRequest{
		Amount:   amount,
		Currency: "usd",
	})
	if err != nil {
		return 0, o.fail(fmt.Errorf("create payment intent: %w", err))
	}

	conf, err := o.confirmer.Confirm(ctx, intent.PaymentIntentID, card)
	if err != nil {
		return 0, o.fail(fmt.Errorf("confirm payment: %w", err))
	}

	o.state = StateAwaitingOrderConfirmation

	items := make([]clients.CheckoutItem, len(o.context.Lines))
	for i, l := range o.context.Lines {
		items[i] = clients.CheckoutItem{ProductID: l.ProductID, Quantity: l.Quantity}
	}

	res, err := o.payments.Checkout(ctx, clients.CheckoutRequest{
		PaymentIntentID: conf.IntentID,
		ShippingAddress: addr,
		Items:           items,
	}, o.idempotencyKey)
	if err != nil {
		return 0, o.fail(fmt.Errorf("create order: %w", err))
	}

	o.state = StateComplete
	o.orderID = res.OrderID
	o.log.Info("order placed", "orderId", res.OrderID, "buyNow", o.context.BuyNow)
	return res.OrderID, nil
}

func (o *Orchestrator) fail(err error) error {
	o.state = StateFailed
	o.lastErr = err
	return err
}

func validateAddress(a clients.ShippingAddress) error {
	missing := []string{}
	for _, f := range []struct{ name, v string }{
		{"full name", a.FullName},
		{"street", a.Street},
		{"city", a.City},
		{"zip code", a.ZipCode},
		{"country", a.Country},
	} {
		if strings.TrimSpace(f.v) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("shipping address incomplete: missing %s", strings.Join(missing, ", "))
	}
	return nil
}
