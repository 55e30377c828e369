package wishlist_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
	"github.com/Hemachandram324/ecommerce-project/internal/testutil"
	"github.com/Hemachandram324/ecommerce-project/internal/wishlist"
)

func newSynchronizer(t *testing.T, f *testutil.FakeAPI) *wishlist.Synchronizer {
	t.Helper()

	store := &session.MemStore{}
	require.NoError(t, store.Save(session.Session{Token: testutil.CustomerToken, UserID: 2, Role: session.RoleCustomer}))

	base, err := clients.NewClient(f.URL(), &http.Client{Timeout: 5 * time.Second}, store)
	require.NoError(t, err)
	return wishlist.NewSynchronizer(clients.NewWishlistClient(base))
}

func TestToggleReconcilesAgainstServer(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	f.SeedProduct(clients.Product{ID: 1, Name: "Poster", Price: decimal.RequireFromString("12.00")})
	f.SeedProduct(clients.Product{ID: 2, Name: "Mug", Price: decimal.RequireFromString("8.00")})

	sync := newSynchronizer(t, f)

	products, err := sync.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)

	products, err = sync.Add(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, wishlist.Contains(products, 1))
	assert.False(t, wishlist.Contains(products, 2))

	products, err = sync.Add(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = sync.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, wishlist.Contains(products, 1))
	assert.True(t, wishlist.Contains(products, 2))
}

func TestAddUnknownProductSurfacesError(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	sync := newSynchronizer(t, f)

	_, err := sync.Add(context.Background(), 404)
	var apiErr *clients.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}
