// Package admin backs the back-office screens: product CRUD, user listing
// and per-user order management. Validation is required-field presence only;
// updates are last write wins.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
	"github.com/Hemachandram324/ecommerce-project/internal/orders"
)

var ErrUnknownStatus = errors.New("unknown order status")

type Console struct {
	products *clients.ProductAdminClient
	catalog  *clients.CatalogClient
	users    *clients.UserClient
	orders   *clients.OrderClient
	log      *slog.Logger
}

func NewConsole(
	products *clients.ProductAdminClient,
	catalog *clients.CatalogClient,
	users *clients.UserClient,
	orderClient *clients.OrderClient,
	log *slog.Logger,
) *Console {
	return &Console{products: products, catalog: catalog, users: users, orders: orderClient, log: log}
}

func (c *Console) ListProducts(ctx context.Context) ([]clients.Product, error) {
	return c.catalog.ListProducts(ctx)
}

func (c *Console) AddProduct(ctx context.Context, form clients.ProductForm) (clients.Product, error) {
	if err := requireProductFields(form); err != nil {
		return clients.Product{}, err
	}
	p, err := c.products.Add(ctx, form)
	if err != nil {
		return clients.Product{}, fmt.Errorf("add product: %w", err)
	}
	c.log.Info("product added", "name", p.Name, "id", p.ID)
	return p, nil
}

func (c *Console) UpdateProduct(ctx context.Context, form clients.ProductForm) (clients.Product, error) {
	if strings.TrimSpace(form.Name) == "" {
		return clients.Product{}, errors.New("product name is required")
	}
	p, err := c.products.Update(ctx, form)
	if err != nil {
		return clients.Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// UpdateProductImage swaps only the image of an existing product.
func (c *Console) UpdateProductImage(ctx context.Context, name string, image io.Reader, imageName string) (clients.Product, error) {
	if strings.TrimSpace(name) == "" {
		return clients.Product{}, errors.New("product name is required")
	}
	p, err := c.products.UpdateImage(ctx, name, image, imageName)
	if err != nil {
		return clients.Product{}, fmt.Errorf("update product image: %w", err)
	}
	return p, nil
}

func (c *Console) DeleteProduct(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("product name is required")
	}
	if err := c.products.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	c.log.Info("product deleted", "name", name)
	return nil
}

// UserPage is one client-side slice of the full user list; the backend has no
// pagination on /users.
type UserPage struct {
	Users      []clients.User
	Page       int
	PageSize   int
	TotalUsers int
}

func (c *Console) ListUsers(ctx context.Context, page, pageSize int) (UserPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	all, err := c.users.List(ctx)
	if err != nil {
		return UserPage{}, fmt.Errorf("list users: %w", err)
	}

	start := (page - 1) * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}

	return UserPage{
		Users:      all[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalUsers: len(all),
	}, nil
}

func (c *Console) ListAllOrders(ctx context.Context) ([]clients.Order, error) {
	return c.orders.ListAll(ctx)
}

func (c *Console) OrdersByUser(ctx context.Context, userID int64) ([]clients.Order, error) {
	return c.orders.ListByUser(ctx, userID)
}

// SetOrderStatus issues a direct status set. Transitions are server
// authoritative; the client only rejects values the enum does not know.
func (c *Console) SetOrderStatus(ctx context.Context, orderID int64, status orders.Status) (clients.Order, error) {
	if !orders.Known(status) {
		return clients.Order{}, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	o, err := c.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return clients.Order{}, fmt.Errorf("update order status: %w", err)
	}
	c.log.Info("order status updated", "orderId", orderID, "status", status)
	return o, nil
}

func (c *Console) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := c.orders.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func requireProductFields(form clients.ProductForm) error {
	missing := []string{}
	if strings.TrimSpace(form.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(form.Price) == "" {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(form.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
