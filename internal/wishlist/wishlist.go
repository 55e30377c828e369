// Package wishlist mirrors the server-held wishlist. Mutations re-fetch the
// list so toggle state always reconciles against what the server stored.
package wishlist

import (
	"context"
	"fmt"

	"github.com/Hemachandram324/ecommerce-project/internal/clients"
)

type Synchronizer struct {
	client *clients.WishlistClient
}

func NewSynchronizer(client *clients.WishlistClient) *Synchronizer {
	return &Synchronizer{client: client}
}

func (s *Synchronizer) Fetch(ctx context.Context) ([]clients.Product, error) {
	products, err := s.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	return products, nil
}

func (s *Synchronizer) Add(ctx context.Context, productID int64) ([]clients.Product, error) {
	if err := s.client.Add(ctx, productID); err != nil {
		return nil, fmt.Errorf("add to wishlist: %w", err)
	}
	return s.Fetch(ctx)
}

func (s *Synchronizer) Remove(ctx context.Context, productID int64) ([]clients.Product, error) {
	if err := s.client.Remove(ctx, productID); err != nil {
		return nil, fmt.Errorf("remove from wishlist: %w", err)
	}
	return s.Fetch(ctx)
}

func Contains(products []clients.Product, productID int64) bool {
	for _, p := range products {
		if p.ID == productID {
			return true
		}
	}
	return false
}
