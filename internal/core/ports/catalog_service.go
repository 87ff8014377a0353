package ports

import "context"

// AddProductInput carries the raw add-product form fields. PriceText is the
// free-text price input; the service extracts the numeric value and keeps the
// trimmed original as the display text.
type AddProductInput struct {
	Name      string
	PriceText string
	ImageURL  string
}

// UpdateProductInput carries a partial update: nil fields are left untouched.
// When PriceText is supplied, both the numeric price and the display text are
// replaced together.
type UpdateProductInput struct {
	Name      *string
	PriceText *string
	ImageURL  *string
}

// ProductView is the render-ready projection of one product. PriceDisplay is
// always resolved (free text when set, grouped numeric otherwise), and
// BuyLink is the pre-built purchase deep link.
type ProductView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	ImageURL     string  `json:"image_url"`
	BuyLink      string  `json:"buy_link"`
}

// CatalogView is the full storefront payload: the ordered products plus the
// fallback image clients substitute when a product image fails to load.
type CatalogView struct {
	Products         []ProductView `json:"products"`
	FallbackImageURL string        `json:"fallback_image_url"`
}

// CatalogService defines the storefront use-cases.
type CatalogService interface {
	// ListProducts returns the catalog in insertion order.
	ListProducts(ctx context.Context) (*CatalogView, error)
	// AddProduct validates all fields at once (returning domain.FieldErrors
	// on failure, with no mutation) and appends a product with a fresh id.
	AddProduct(ctx context.Context, input AddProductInput) (*ProductView, error)
	// UpdateProduct replaces only the supplied fields of the product with the
	// given id. An unknown id is a no-op, not an error.
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) error
	// ProductBuyLink builds the purchase deep link for one product.
	ProductBuyLink(ctx context.Context, id string) (string, error)
	// HelpLink builds the fixed help deep link.
	HelpLink() string
}
