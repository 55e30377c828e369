package admin_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemachandram324/ecommerce-project/internal/admin"
	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/orders"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
	"github.com/Hemachandram324/ecommerce-project/internal/testutil"
)

func newConsole(t *testing.T, f *testutil.FakeAPI) *admin.Console {
	t.Helper()

	store := &session.MemStore{}
	require.NoError(t, store.Save(session.Session{Token: testutil.AdminToken, UserID: 1, Role: session.RoleAdmin}))

	base, err := clients.NewClient(f.URL(), &http.Client{Timeout: 5 * time.Second}, store)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return admin.NewConsole(
		clients.NewProductAdminClient(base),
		clients.NewCatalogClient(base),
		clients.NewUserClient(base),
		clients.NewOrderClient(base),
		log,
	)
}

func TestProductLifecycle(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	console := newConsole(t, f)

	p, err := console.AddProduct(context.Background(), clients.ProductForm{
		Name:        "Standing Desk",
		Description: "Motorized, walnut",
		Price:       "399.00",
		Category:    "furniture",
		Image:       strings.NewReader("fake png bytes"),
		ImageName:   "desk.png",
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "/images/desk.png", p.ImageURL)

	updated, err := console.UpdateProduct(context.Background(), clients.ProductForm{
		Name:  "Standing Desk",
		Price: "349.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "349", updated.Price.String())
	assert.Equal(t, "Motorized, walnut", updated.Description, "unchanged fields survive an update")

	list, err := console.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	withImage, err := console.UpdateProductImage(context.Background(), "Standing Desk", strings.NewReader("new png bytes"), "desk-v2.png")
	require.NoError(t, err)
	assert.Equal(t, "/images/desk-v2.png", withImage.ImageURL)

	require.NoError(t, console.DeleteProduct(context.Background(), "Standing Desk"))

	list, err = console.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddProductRequiresFields(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	console := newConsole(t, f)

	_, err := console.AddProduct(context.Background(), clients.ProductForm{Name: "No Price"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
	assert.Zero(t, f.RequestCount("POST /v1/products/addproduct"), "invalid form must not be submitted")
}

func TestUserPaginationIsClientSide(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	for i := int64(1); i <= 25; i++ {
		f.SeedUsers(clients.User{ID: i, Name: "User", Email: "u@example.com", Role: session.RoleCustomer})
	}
	console := newConsole(t, f)

	page, err := console.ListUsers(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Users, 10)
	assert.Equal(t, 25, page.TotalUsers)

	page, err = console.ListUsers(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Users, 5)

	page, err = console.ListUsers(context.Background(), 9, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Users, "out-of-range pages are empty, not an error")

	// One backend fetch per listing; the slicing happened locally.
	assert.Equal(t, 3, f.RequestCount("GET /users"))
}

func TestStatusUpdateReflectedOnNextFetch(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	f.SeedOrder(clients.Order{ID: 11, Status: orders.StatusShipped, Total: decimal.RequireFromString("50.00")})
	console := newConsole(t, f)

	o, err := console.SetOrderStatus(context.Background(), 11, orders.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusDelivered, o.Status)

	list, err := console.ListAllOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, orders.StatusDelivered, list[0].Status)
	assert.Equal(t, 100, orders.ProgressPercent(list[0].Status))
}

func TestUnknownStatusRejectedLocally(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	f.SeedOrder(clients.Order{ID: 11, Status: orders.StatusPending})
	console := newConsole(t, f)

	_, err := console.SetOrderStatus(context.Background(), 11, "RETURNED")
	assert.ErrorIs(t, err, admin.ErrUnknownStatus)
	assert.Zero(t, f.RequestCount("POST /orders/11/status"))
}

func TestAdminEndpointsRejectCustomers(t *testing.T) {
	f := testutil.NewFakeAPI(t)

	store := &session.MemStore{}
	require.NoError(t, store.Save(session.Session{Token: testutil.CustomerToken, UserID: 2, Role: session.RoleCustomer}))
	base, err := clients.NewClient(f.URL(), &http.Client{Timeout: 5 * time.Second}, store)
	require.NoError(t, err)

	_, err = clients.NewUserClient(base).List(context.Background())
	var apiErr *clients.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}
