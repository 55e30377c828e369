package checkout_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemachandram324/ecommerce-project/internal/cart"
	"github.com/Hemachandram324/ecommerce-project/internal/checkout"
	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/payment"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
	"github.com/Hemachandram324/ecommerce-project/internal/testutil"
)

type stubConfirmer struct {
	confirmFunc func(ctx context.Context, intentID string, card payment.Card) (payment.Confirmation, error)
	calls       int
}

func (s *stubConfirmer) Confirm(ctx context.Context, intentID string, card payment.Card) (payment.Confirmation, error) {
	s.calls++
	if s.confirmFunc != nil {
		return s.confirmFunc(ctx, intentID, card)
	}
	return payment.Confirmation{IntentID: intentID, Status: "succeeded"}, nil
}

var (
	testCard = payment.Card{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"}
	testAddr = clients.ShippingAddress{
		FullName: "Ada Lovelace",
		Street:   "1 Analytical Way",
		City:     "London",
		ZipCode:  "E1 6AN",
		Country:  "UK",
	}
)

func newOrchestrator(t *testing.T, f *testutil.FakeAPI, confirmer payment.Confirmer) *checkout.Orchestrator {
	t.Helper()

	store := &session.MemStore{}
	require.NoError(t, store.Save(session.Session{Token: testutil.CustomerToken, UserID: 2, Role: session.RoleCustomer}))

	base, err := clients.NewClient(f.URL(), &http.Client{Timeout: 5 * time.Second}, store)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cartSync := cart.NewSynchronizer(clients.NewCartClient(base), clients.NewCatalogClient(base), log)
	return checkout.NewOrchestrator(clients.NewPaymentClient(base), confirmer, cartSync, clients.NewCatalogClient(base), log)
}

func seed(f *testutil.FakeAPI) {
	f.SeedProduct(clients.Product{ID: 1, Name: "Headphones", Price: decimal.RequireFromString("49.99"), Category: "audio"})
	f.SeedProduct(clients.Product{ID: 2, Name: "Speaker", Price: decimal.RequireFromString("30.01"), Category: "audio"})
}

func TestHappyPathFromCart(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	seed(f)
	f.SeedCartItem(1, 1)
	f.SeedCartItem(2, 1)

	confirmer := &stubConfirmer{}
	orch := newOrchestrator(t, f, confirmer)

	require.NoError(t, orch.LoadCartContext(context.Background()))
	assert.Equal(t, checkout.StateAwaitingPaymentMethod, orch.State())
	assert.Equal(t, "80.00", orch.Context().Total.StringFixed(2))

	orderID, err := orch.Submit(context.Background(), testCard, testAddr)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateComplete, orch.State())
	assert.Equal(t, 1, confirmer.calls)

	o, ok := f.Order(orderID)
	require.True(t, ok)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, "Ada Lovelace", o.ShippingAddress.FullName)
}

func TestOrderNeverCreatedWhenPaymentFails(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	seed(f)
	f.SeedCartItem(1, 1)

	confirmer := &stubConfirmer{
		confirmFunc: func(ctx context.Context, intentID string, card payment.Card) (payment.Confirmation, error) {
			return payment.Confirmation{}, payment.ErrPaymentDeclined
		},
	}
	orch := newOrchestrator(t, f, confirmer)

	require.NoError(t, orch.LoadCartContext(context.Background()))
	_, err := orch.Submit(context.Background(), testCard, testAddr)
	require.ErrorIs(t, err, payment.ErrPaymentDeclined)

	assert.Equal(t, checkout.StateFailed, orch.State())
	assert.Zero(t, f.CheckoutCalls(), "order creation must not be reached after a declined payment")
}

func TestFormStaysEditableAfterFailure(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	seed(f)
	f.SeedCartItem(1, 1)

	declined := errors.New("insufficient funds")
	fail := true
	confirmer := &stubConfirmer{
		confirmFunc: func(ctx context.Context, intentID string, card payment.Card) (payment.Confirmation, error) {
			if fail {
				return payment.Confirmation{}, declined
			}
			return payment.Confirmation{IntentID: intentID, Status: "succeeded"}, nil
		},
	}
	orch := newOrchestrator(t, f, confirmer)
	require.NoError(t, orch.LoadCartContext(context.Background()))

	_, err := orch.Submit(context.Background(), testCard, testAddr)
	require.ErrorIs(t, err, declined)
	assert.Equal(t, checkout.StateFailed, orch.State())

	// Retry with (say) a corrected card succeeds on the same context.
	fail = false
	orderID, err := orch.Submit(context.Background(), testCard, testAddr)
	require.NoError(t, err)
	assert.NotZero(t, orderID)
	assert.Equal(t, checkout.StateComplete, orch.State())
}

func TestResubmissionCannotDuplicateTheOrder(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	seed(f)
	f.SeedCartItem(1, 1)

	orch := newOrchestrator(t, f, &stubConfirmer{})
	require.NoError(t, orch.LoadCartContext(context.Background()))

	first, err := orch.Submit(context.Background(), testCard, testAddr)
	require.NoError(t, err)

	// Complete guards against a second Submit on the same context.
	_, err = orch.Submit(context.Background(), testCard, testAddr)
	assert.ErrorIs(t, err, checkout.ErrNoContext)

	// Even a raw re-send with the same idempotency key yields the same
	// order on the backend side; only one order exists.
	o, ok := f.Order(first)
	require.True(t, ok)
	assert.Equal(t, first, o.ID)
	assert.Equal(t, 1, f.CheckoutCalls())
}

func TestBuyNowBypassesServerCart(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	seed(f)

	orch := newOrchestrator(t, f, &stubConfirmer{})
	require.NoError(t, orch.LoadBuyNowContext(context.Background(), 2))

	ctxData := orch.Context()
	require.NotNil(t, ctxData)
	assert.True(t, ctxData.BuyNow)
	require.Len(t, ctxData.Lines, 1)
	assert.Equal(t, 1, ctxData.Lines[0].Quantity)
	assert.Equal(t, "30.01", ctxData.Total.StringFixed(2))

	_, err := orch.Submit(context.Background(), testCard, testAddr)
	require.NoError(t, err)

	assert.Zero(t, f.RequestCount("GET /v1/carts"), "buy-now must not read the server cart")
}

func TestEmptyCartCannotCheckout(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	orch := newOrchestrator(t, f, &stubConfirmer{})

	err := orch.LoadCartContext(context.Background())
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Equal(t, checkout.StateFailed, orch.State())

	_, err = orch.Submit(context.Background(), testCard, testAddr)
	assert.ErrorIs(t, err, checkout.ErrNoContext)
}

func TestIncompleteAddressRejectedBeforePayment(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	seed(f)
	f.SeedCartItem(1, 1)

	confirmer := &stubConfirmer{}
	orch := newOrchestrator(t, f, confirmer)
	require.NoError(t, orch.LoadCartContext(context.Background()))

	_, err := orch.Submit(context.Background(), testCard, clients.ShippingAddress{FullName: "Ada Lovelace"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipping address incomplete")
	assert.Zero(t, confirmer.calls)
	assert.Zero(t, f.RequestCount("POST /payment/create-payment-intent"))
}
