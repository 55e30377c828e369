// Package testutil provides an in-memory fake of the storefront backend for
// package tests: the real endpoint surface over httptest, with knobs for
// failure injection and request counting.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/orders"
	"github.com/Hemachandram324/ecommerce-project/internal/session"
)

const (
	// Tokens the fake accepts.
	CustomerToken = "tok-customer"
	AdminToken    = "tok-admin"
)

type FakeAPI struct {
	Server *httptest.Server

	mu sync.Mutex

	products map[int64]clients.Product
	cart     []clients.CartItem
	wishlist map[int64]bool
	orders   map[int64]*clients.Order
	users    []clients.User

	nextItemID  int64
	nextOrderID int64

	// TotalOverride, when set, is reported as the cart total regardless of
	// item subtotals. Used to prove the client never totals locally.
	TotalOverride *decimal.Decimal

	// ForceUnauthorized makes every protected route answer 401.
	ForceUnauthorized bool

	// FailProductID makes product detail lookups for that id return 500.
	FailProductID int64

	createdIntents map[string]bool
	idempotency    map[string]int64

	requestCounts map[string]int
}

func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		products:       map[int64]clients.Product{},
		wishlist:       map[int64]bool{},
		orders:         map[int64]*clients.Order{},
		createdIntents: map[string]bool{},
		idempotency:    map[string]int64{},
		requestCounts:  map[string]int{},
		nextItemID:     1,
		nextOrderID:    1,
	}

	r := chi.NewRouter()
	r.Use(f.count)

	r.Post("/auth/login", f.login)
	r.Post("/auth/register", f.register)

	r.Get("/v1/products/getproducts", f.listProducts)
	r.Get("/v1/products/get/{id}", f.getProduct)
	r.Get("/v1/products/category/byname", f.productsByCategory)
	r.Get("/v1/products/getwithname", f.productsByName)
	r.Get("/categories/getCategory", f.listCategories)

	r.Group(func(r chi.Router) {
		r.Use(f.requireAuth)

		r.Get("/v1/carts", f.getCart)
		r.Post("/v1/carts/items", f.addCartItem)
		r.Put("/v1/carts/items/{itemId}", f.updateCartItem)
		r.Delete("/v1/carts/items/{itemId}", f.removeCartItem)
		r.Delete("/v1/carts", f.clearCart)

		r.Get("/v1/wishlist/list", f.listWishlist)
		r.Post("/v1/wishlist/add/{id}", f.addWishlist)
		r.Delete("/v1/wishlist/remove/{id}", f.removeWishlist)

		r.Post("/payment/create-payment-intent", f.createIntent)
		r.Post("/payment/checkout", f.checkout)

		r.Get("/orders/user", f.listOrders)
		r.Get("/orders/order/{orderId}", f.getOrder)
		r.Post("/orders/{orderId}/status", f.updateOrderStatus)
		r.Delete("/orders/{orderId}", f.deleteOrder)

		r.Group(func(r chi.Router) {
			r.Use(f.requireAdmin)
			r.Get("/orders/admin", f.listOrders)
			r.Get("/orders/admin/user/{userId}", f.listOrders)
			r.Get("/users", f.listUsers)
			r.Post("/v1/products/addproduct", f.addProduct)
			r.Put("/v1/products/update", f.updateProduct)
			r.Patch("/v1/products/update/image", f.updateProductImage)
			r.Delete("/v1/products/delete", f.deleteProduct)
		})
	})

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeAPI) URL() string { return f.Server.URL }

// SeedProduct registers a product in the fake catalog.
func (f *FakeAPI) SeedProduct(p clients.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
}

// SeedCartItem places an item directly into the server cart.
func (f *FakeAPI) SeedCartItem(productID int64, quantity int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.products[productID]
	f.cart = append(f.cart, clients.CartItem{
		ItemID:    f.nextItemID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     p.Price,
		Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	})
	f.nextItemID++
}

func (f *FakeAPI) SeedUsers(users ...clients.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, users...)
}

func (f *FakeAPI) SeedOrder(o clients.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := o
	f.orders[o.ID] = &cp
	if o.ID >= f.nextOrderID {
		f.nextOrderID = o.ID + 1
	}
}

// RequestCount returns how many requests hit "METHOD /path".
func (f *FakeAPI) RequestCount(methodAndPath string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requestCounts[methodAndPath]
}

// CheckoutCalls reports how many order-creation requests were received.
func (f *FakeAPI) CheckoutCalls() int { return f.RequestCount("POST /payment/checkout") }

func (f *FakeAPI) Order(id int64) (clients.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return clients.Order{}, false
	}
	return *o, true
}

// --- middleware ---

func (f *FakeAPI) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requestCounts[r.Method+" "+r.URL.Path]++
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		forced := f.ForceUnauthorized
		f.mu.Unlock()

		auth := r.Header.Get("Authorization")
		if forced || (auth != "Bearer "+CustomerToken && auth != "Bearer "+AdminToken) {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+AdminToken {
			writeError(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- handlers ---

func (f *FakeAPI) login(w http.ResponseWriter, r *http.Request) {
	var req clients.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	switch req.Email {
	case "admin@example.com":
		writeJSON(w, http.StatusOK, clients.LoginResponse{Token: AdminToken, UserID: 1, Role: session.RoleAdmin})
	case "customer@example.com":
		writeJSON(w, http.StatusOK, clients.LoginResponse{Token: CustomerToken, UserID: 2, Role: session.RoleCustomer})
	default:
		writeError(w, http.StatusBadRequest, "invalid credentials")
	}
}

func (f *FakeAPI) register(w http.ResponseWriter, r *http.Request) {
	var req clients.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "email required")
		return
	}
	writeJSON(w, http.StatusOK, clients.RegisterResponse{Message: "registered", UserID: 99})
}

func (f *FakeAPI) listProducts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []clients.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) getProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailProductID != 0 && id == f.FailProductID {
		writeError(w, http.StatusInternalServerError, "boom")
		return
	}
	p, ok := f.products[id]
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) productsByCategory(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []clients.Product{}
	for _, p := range f.products {
		if p.Category == name {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) productsByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []clients.Product{}
	for _, p := range f.products {
		if p.Name == name {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) listCategories(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	out := []clients.Category{}
	var id int64
	for _, p := range f.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			id++
			out = append(out, clients.Category{ID: id, Name: p.Category})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) cartResponseLocked() clients.Cart {
	total := decimal.Zero
	for _, it := range f.cart {
		total = total.Add(it.Subtotal)
	}
	if f.TotalOverride != nil {
		total = *f.TotalOverride
	}
	items := f.cart
	if items == nil {
		items = []clients.CartItem{}
	}
	return clients.Cart{CartID: 1, Items: items, Total: total}
}

func (f *FakeAPI) getCart(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.cartResponseLocked())
}

func (f *FakeAPI) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req clients.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "invalid item")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[req.ProductID]
	if !ok {
		writeError(w, http.StatusBadRequest, "product not found")
		return
	}
	f.cart = append(f.cart, clients.CartItem{
		ItemID:    f.nextItemID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     p.Price,
		Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	})
	f.nextItemID++
	writeJSON(w, http.StatusOK, f.cartResponseLocked())
}

func (f *FakeAPI) updateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	var req clients.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart {
		if f.cart[i].ItemID == itemID {
			f.cart[i].Quantity = req.Quantity
			f.cart[i].Subtotal = f.cart[i].Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
			writeJSON(w, http.StatusOK, f.cartResponseLocked())
			return
		}
	}
	writeError(w, http.StatusNotFound, "item not found")
}

func (f *FakeAPI) removeCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart {
		if f.cart[i].ItemID == itemID {
			f.cart = append(f.cart[:i], f.cart[i+1:]...)
			writeJSON(w, http.StatusOK, f.cartResponseLocked())
			return
		}
	}
	writeError(w, http.StatusNotFound, "item not found")
}

func (f *FakeAPI) clearCart(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cart = nil
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeAPI) listWishlist(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []clients.Product{}
	for id := range f.wishlist {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) addWishlist(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	f.wishlist[id] = true
	writeJSON(w, http.StatusOK, map[string]string{"message": "added"})
}

func (f *FakeAPI) removeWishlist(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.wishlist, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "removed"})
}

func (f *FakeAPI) createIntent(w http.ResponseWriter, r *http.Request) {
	var req clients.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("pi_test_%d", len(f.createdIntents)+1)
	f.createdIntents[id] = true
	writeJSON(w, http.StatusOK, clients.PaymentIntentResponse{
		ClientSecret:    id + "_secret",
		PaymentIntentID: id,
	})
}

func (f *FakeAPI) checkout(w http.ResponseWriter, r *http.Request) {
	var req clients.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.createdIntents[req.PaymentIntentID] {
		writeError(w, http.StatusPaymentRequired, "unknown payment intent")
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if key != "" {
		if orderID, ok := f.idempotency[key]; ok {
			writeJSON(w, http.StatusOK, clients.CheckoutResponse{OrderID: orderID})
			return
		}
	}

	total := decimal.Zero
	items := make([]clients.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		p, ok := f.products[it.ProductID]
		if !ok {
			writeError(w, http.StatusBadRequest, "product not found")
			return
		}
		items = append(items, clients.OrderItem{
			ID:          int64(len(items) + 1),
			ProductID:   it.ProductID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			UnitPrice:   p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	o := &clients.Order{
		ID:              f.nextOrderID,
		Items:           items,
		Total:           total,
		Status:          orders.StatusPending,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       time.Now().UTC(),
	}
	f.orders[o.ID] = o
	f.nextOrderID++
	f.cart = nil
	if key != "" {
		f.idempotency[key] = o.ID
	}

	writeJSON(w, http.StatusOK, clients.CheckoutResponse{OrderID: o.ID})
}

func (f *FakeAPI) listOrders(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []clients.Order{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPI) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (f *FakeAPI) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	var req clients.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	o.Status = req.Status
	writeJSON(w, http.StatusOK, o)
}

func (f *FakeAPI) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, id)
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeAPI) listUsers(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.users)
}

func (f *FakeAPI) addProduct(w http.ResponseWriter, r *http.Request) {
	f.upsertProduct(w, r, true)
}

func (f *FakeAPI) updateProduct(w http.ResponseWriter, r *http.Request) {
	f.upsertProduct(w, r, false)
}

func (f *FakeAPI) upsertProduct(w http.ResponseWriter, r *http.Request, create bool) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	price, err := decimal.NewFromString(r.FormValue("price"))
	if create && err != nil {
		writeError(w, http.StatusBadRequest, "price required")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var p clients.Product
	if create {
		p = clients.Product{ID: int64(len(f.products) + 1)}
	} else {
		found := false
		for _, existing := range f.products {
			if existing.Name == name {
				p, found = existing, true
				break
			}
		}
		if !found {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
	}

	p.Name = name
	if v := r.FormValue("description"); v != "" {
		p.Description = v
	}
	if err == nil {
		p.Price = price
	}
	if v := r.FormValue("category"); v != "" {
		p.Category = v
	}
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		file.Close()
		p.ImageURL = "/images/" + header.Filename
	}

	f.products[p.ID] = p
	writeJSON(w, http.StatusOK, p)
}

func (f *FakeAPI) updateProductImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form")
		return
	}
	name := r.FormValue("name")
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image required")
		return
	}
	file.Close()

	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.products {
		if p.Name == name {
			p.ImageURL = "/images/" + header.Filename
			f.products[id] = p
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
}

func (f *FakeAPI) deleteProduct(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.products {
		if p.Name == name {
			delete(f.products, id)
			writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
			return
		}
	}
	writeError(w, http.StatusNotFound, "product not found")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
