package clients_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

func newStubServer(t *testing.T, status int, responseBody string) (*httptest.Server, <-chan recordedRequest) {
	t.Helper()
	ch := make(chan recordedRequest, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ch <- recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)
	return srv, ch
}

func newBase(t *testing.T, baseURL string, store session.Store) *clients.Client {
	t.Helper()
	c, err := clients.NewClient(baseURL, &http.Client{Timeout: 5 * time.Second}, store)
	require.NoError(t, err)
	return c
}

func TestBearerTokenAttachedWhenSessionPresent(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `{}`)

	store := &session.MemStore{}
	require.NoError(t, store.Save(session.Session{Token: "tok-123", UserID: 1, Role: session.RoleCustomer}))

	base := newBase(t, srv.URL, store)
	require.NoError(t, base.DoJSON(context.Background(), http.MethodGet, "/v1/carts", "", nil, nil, nil))

	rec := <-ch
	assert.Equal(t, "Bearer tok-123", rec.Header.Get("Authorization"))
}

func TestNoAuthorizationHeaderWithoutSession(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `[]`)

	base := newBase(t, srv.URL, &session.MemStore{})
	var out []clients.Product
	require.NoError(t, base.DoJSON(context.Background(), http.MethodGet, "/v1/products/getproducts", "", nil, &out, nil))

	rec := <-ch
	assert.Empty(t, rec.Header.Get("Authorization"))
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusUnauthorized, `{"error":"token expired"}`)

	store := &session.MemStore{}
	require.NoError(t, store.Save(session.Session{Token: "tok-stale", UserID: 1, Role: session.RoleCustomer}))

	base := newBase(t, srv.URL, store)
	err := base.DoJSON(context.Background(), http.MethodGet, "/v1/carts", "", nil, nil, nil)
	require.ErrorIs(t, err, clients.ErrUnauthorized)

	_, err = store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession, "session must be cleared after a 401")
}

func TestAPIErrorDecoded(t *testing.T) {
	srv, _ := newStubServer(t, http.StatusBadRequest, `{"error":"invalid quantity"}`)

	base := newBase(t, srv.URL, &session.MemStore{})
	err := base.DoJSON(context.Background(), http.MethodPost, "/v1/carts/items", "", map[string]int{"quantity": 0}, nil, nil)

	var apiErr *clients.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid quantity", apiErr.Message)
}

func TestCheckoutSendsIdempotencyKey(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `{"orderId":7}`)

	store := &session.MemStore{}
	require.NoError(t, store.Save(session.Session{Token: "tok", UserID: 1, Role: session.RoleCustomer}))

	pc := clients.NewPaymentClient(newBase(t, srv.URL, store))
	res, err := pc.Checkout(context.Background(), clients.CheckoutRequest{
		PaymentIntentID: "pi_1",
		Items:           []clients.CheckoutItem{{ProductID: 3, Quantity: 2}},
	}, "key-abc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.OrderID)

	rec := <-ch
	assert.Equal(t, "POST", rec.Method)
	assert.Equal(t, "/payment/checkout", rec.Path)
	assert.Equal(t, "key-abc", rec.Header.Get("Idempotency-Key"))
	assert.Contains(t, rec.Body, `"paymentIntentId":"pi_1"`)
}

func TestClientPathsAndQueries(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `null`)
	base := newBase(t, srv.URL, &session.MemStore{})

	catalog := clients.NewCatalogClient(base)
	orderClient := clients.NewOrderClient(base)
	wishlistClient := clients.NewWishlistClient(base)

	cases := []struct {
		name      string
		call      func() error
		wantPath  string
		wantQuery string
	}{
		{
			name:     "product by id",
			call:     func() error { _, err := catalog.GetProduct(context.Background(), 12); return err },
			wantPath: "/v1/products/get/12",
		},
		{
			name:      "by category",
			call:      func() error { _, err := catalog.ByCategory(context.Background(), "Shoes & Bags"); return err },
			wantPath:  "/v1/products/category/byname",
			wantQuery: "name=Shoes+%26+Bags",
		},
		{
			name:     "orders by user",
			call:     func() error { _, err := orderClient.ListByUser(context.Background(), 9); return err },
			wantPath: "/orders/admin/user/9",
		},
		{
			name:     "wishlist remove",
			call:     func() error { return wishlistClient.Remove(context.Background(), 5) },
			wantPath: "/v1/wishlist/remove/5",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.call())
			rec := <-ch
			assert.Equal(t, tc.wantPath, rec.Path)
			if tc.wantQuery != "" {
				assert.Equal(t, tc.wantQuery, rec.Query)
			}
		})
	}
}

func TestBasePathPrefixIsKept(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `null`)

	base := newBase(t, srv.URL+"/api", &session.MemStore{})
	cc := clients.NewCartClient(base)

	_, err := cc.Get(context.Background())
	require.NoError(t, err)

	req := <-ch
	assert.Equal(t, "/api/v1/carts", req.Path)
}
