package ports

import (
	"context"

	"github.com/minoq/storefront/internal/core/domain"
)

// CatalogRepository stores the ordered product collection. Implementations
// must preserve insertion order and return copies, never shared records —
// all mutation goes through the service layer.
type CatalogRepository interface {
	// Append adds a product to the end of the collection.
	Append(ctx context.Context, p domain.Product) error
	// FindByID returns a copy of the product with the given id, or
	// domain.ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Replace swaps the stored product with the same ID for p, keeping its
	// position in the order. Returns domain.ErrProductNotFound when absent.
	Replace(ctx context.Context, p domain.Product) error
	// List returns the full ordered collection.
	List(ctx context.Context) ([]domain.Product, error)
}
