// Package memory provides the in-process adapters. The catalog is in-memory
// by design — it lives for the process lifetime and is re-seeded on start —
// while the session registry and note store here are the fallbacks used when
// Redis or MongoDB are not configured.
package memory

import (
	"context"
	"sync"

	"github.com/minoq/storefront/internal/core/domain"
)

// CatalogRepository holds the ordered product collection. It hands out copies
// so callers can never mutate stored records directly.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewCatalogRepository seeds the repository with the given products in order.
func NewCatalogRepository(seed []domain.Product) *CatalogRepository {
	products := make([]domain.Product, len(seed))
	copy(products, seed)
	return &CatalogRepository{products: products}
}

// Append adds a product to the end of the collection.
func (r *CatalogRepository) Append(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
	return nil
}

// FindByID returns a copy of the matching product.
func (r *CatalogRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Replace swaps the stored product carrying p.ID for p, preserving its
// position. Implemented as a map over the slice producing fresh records, so
// no shared record is ever mutated in place.
func (r *CatalogRepository) Replace(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	next := make([]domain.Product, len(r.products))
	for i, existing := range r.products {
		if existing.ID == p.ID {
			next[i] = p
			found = true
		} else {
			next[i] = existing
		}
	}
	if !found {
		return domain.ErrProductNotFound
	}
	r.products = next
	return nil
}

// List returns a copy of the full ordered collection.
func (r *CatalogRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
