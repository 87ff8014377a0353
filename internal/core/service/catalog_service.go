package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minoq/storefront/internal/api/metrics"
	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
)

// Validation messages surfaced per field. All fields are checked in one pass
// so a single submission reports every failure at once.
const (
	msgNameRequired     = "Product name is required"
	msgPriceRequired    = "Price is required"
	msgPriceInvalid     = "Price must be a valid number greater than 0"
	msgImageURLRequired = "Image URL is required"
)

type CatalogService struct {
	repo     ports.CatalogRepository
	ids      ports.IDGenerator
	links    domain.LinkBuilder
	fallback string
	logger   zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, ids ports.IDGenerator, links domain.LinkBuilder, fallbackImageURL string, logger zerolog.Logger) *CatalogService {
	if fallbackImageURL == "" {
		fallbackImageURL = domain.FallbackImageURL
	}
	return &CatalogService{repo: repo, ids: ids, links: links, fallback: fallbackImageURL, logger: logger}
}

// ListProducts returns the catalog in insertion order, resolved for rendering.
func (s *CatalogService) ListProducts(ctx context.Context) (*ports.CatalogView, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	views := make([]ports.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.view(p))
	}
	return &ports.CatalogView{Products: views, FallbackImageURL: s.fallback}, nil
}

// AddProduct validates all form fields at once and, on success, appends a
// product with a freshly generated id. On any field failure no mutation
// occurs and the returned domain.FieldErrors carries every message.
func (s *CatalogService) AddProduct(ctx context.Context, input ports.AddProductInput) (*ports.ProductView, error) {
	errs := domain.FieldErrors{}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		errs["name"] = msgNameRequired
	}

	priceText := strings.TrimSpace(input.PriceText)
	price, priceOK := 0.0, false
	if priceText == "" {
		errs["price"] = msgPriceRequired
	} else if price, priceOK = domain.ExtractNumericPrice(priceText); !priceOK {
		errs["price"] = msgPriceInvalid
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		errs["image_url"] = msgImageURLRequired
	}

	if len(errs) > 0 {
		return nil, errs
	}

	product := domain.Product{
		ID:           s.ids.NewID(),
		Name:         name,
		Price:        price,
		PriceDisplay: priceText,
		ImageURL:     imageURL,
	}

	if err := s.repo.Append(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to append product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product added")

	v := s.view(product)
	return &v, nil
}

// UpdateProduct replaces only the supplied fields of the identified product.
// Supplied fields are validated the way the edit form does: name and price
// must pass, the image URL is not re-validated for presence. An unknown id is
// a logged no-op by policy, not an error.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) error {
	errs := domain.FieldErrors{}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs["name"] = msgNameRequired
	}
	if input.PriceText != nil {
		if strings.TrimSpace(*input.PriceText) == "" {
			errs["price"] = msgPriceRequired
		} else if _, ok := domain.ExtractNumericPrice(*input.PriceText); !ok {
			errs["price"] = msgPriceInvalid
		}
	}
	if len(errs) > 0 {
		return errs
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.ProductUpdatesTotal.WithLabelValues("not_found").Inc()
			s.logger.Debug().Str("product_id", id).Msg("update for unknown product ignored")
			return nil
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to load product for update")
		return err
	}

	merged := mergeProduct(*current, input)
	if err := s.repo.Replace(ctx, merged); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.ProductUpdatesTotal.WithLabelValues("not_found").Inc()
			return nil
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to replace product")
		return err
	}

	metrics.ProductUpdatesTotal.WithLabelValues("updated").Inc()
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return nil
}

// ProductBuyLink builds the purchase deep link for one product, always from
// the canonical numeric price.
func (s *CatalogService) ProductBuyLink(ctx context.Context, id string) (string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	metrics.BuyLinksBuiltTotal.Inc()
	return s.links.BuyNowLink(p.Name, p.Price), nil
}

// HelpLink builds the fixed help deep link.
func (s *CatalogService) HelpLink() string {
	return s.links.HelpLink()
}

func (s *CatalogService) view(p domain.Product) ports.ProductView {
	return ports.ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: domain.DisplayPrice(p.Price, p.PriceDisplay),
		ImageURL:     p.ImageURL,
		BuyLink:      s.links.BuyNowLink(p.Name, p.Price),
	}
}

// mergeProduct shallow-merges the supplied fields over the current record and
// returns a new value, leaving the stored record untouched.
func mergeProduct(current domain.Product, input ports.UpdateProductInput) domain.Product {
	if input.Name != nil {
		current.Name = strings.TrimSpace(*input.Name)
	}
	if input.PriceText != nil {
		price, _ := domain.ExtractNumericPrice(*input.PriceText)
		current.Price = price
		current.PriceDisplay = strings.TrimSpace(*input.PriceText)
	}
	if input.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	return current
}
