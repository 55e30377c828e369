// Package cart mirrors the server-held cart. The server is the source of
// truth: every mutation is followed by a full re-fetch and the client never
// computes quantities or totals on its own.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
)

// ErrQuantityTooLow is returned before any request is sent when a target
// quantity below 1 is asked for.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

// Placeholder values shown when the product lookup for a cart item fails.
// Enrichment is best effort and never fails the page.
const (
	placeholderName  = "(unavailable product)"
	placeholderImage = "https://via.placeholder.com/80"
)

type ItemView struct {
	ItemID    int64
	ProductID int64
	Name      string
	ImageURL  string
	Quantity  int
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
}

// View is the display model of the server cart. Total is always the
// server-reported value.
type View struct {
	CartID int64
	Items  []ItemView
	Total  decimal.Decimal
}

func (v *View) Empty() bool { return len(v.Items) == 0 }

type Synchronizer struct {
	carts   *clients.CartClient
	catalog *clients.CatalogClient
	log     *slog.Logger
}

func NewSynchronizer(carts *clients.CartClient, catalog *clients.CatalogClient, log *slog.Logger) *Synchronizer {
	return &Synchronizer{carts: carts, catalog: catalog, log: log}
}

// Fetch loads the cart and enriches each line with product details for
// display. Lookups run concurrently; a failed lookup falls back to a
// placeholder.
func (s *Synchronizer) Fetch(ctx context.Context) (*View, error) {
	c, err := s.carts.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return s.enrich(ctx, c)
}

func (s *Synchronizer) enrich(ctx context.Context, c clients.Cart) (*View, error) {
	view := &View{
		CartID: c.CartID,
		Items:  make([]ItemView, len(c.Items)),
		Total:  c.Total,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, item := range c.Items {
		view.Items[i] = ItemView{
			ItemID:    item.ItemID,
			ProductID: item.ProductID,
			Name:      placeholderName,
			ImageURL:  placeholderImage,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		}

		i, item := i, item
		g.Go(func() error {
			p, err := s.catalog.GetProduct(gctx, item.ProductID)
			if err != nil {
				s.log.Warn("product lookup failed for cart item",
					"itemId", item.ItemID, "productId", item.ProductID, "err", err)
				return nil
			}
			view.Items[i].Name = p.Name
			if p.ImageURL != "" {
				view.Items[i].ImageURL = p.ImageURL
			}
			return nil
		})
	}

	// Workers only ever return nil; Wait is for completion.
	_ = g.Wait()
	return view, nil
}

func (s *Synchronizer) Add(ctx context.Context, productID int64, quantity int) (*View, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}
	if _, err := s.carts.AddItem(ctx, clients.AddCartItemRequest{ProductID: productID, Quantity: quantity}); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	return s.Fetch(ctx)
}

func (s *Synchronizer) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*View, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}
	if _, err := s.carts.UpdateItem(ctx, itemID, clients.UpdateCartItemRequest{Quantity: quantity}); err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	return s.Fetch(ctx)
}

func (s *Synchronizer) Remove(ctx context.Context, itemID int64) (*View, error) {
	if _, err := s.carts.RemoveItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("remove item: %w", err)
	}
	return s.Fetch(ctx)
}

func (s *Synchronizer) Clear(ctx context.Context) error {
	if err := s.carts.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
