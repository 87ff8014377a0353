package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubCatalogRepo struct {
	products  []domain.Product
	appendErr error // if set, Append returns this error
}

func newStubCatalogRepo(seed ...domain.Product) *stubCatalogRepo {
	return &stubCatalogRepo{products: seed}
}

func (r *stubCatalogRepo) Append(_ context.Context, p domain.Product) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.products = append(r.products, p)
	return nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubCatalogRepo) Replace(_ context.Context, p domain.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *stubCatalogRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// seqIDs issues "gen-1", "gen-2", … so tests can assert on fresh ids.
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return "gen-" + strconv.Itoa(g.n)
}

var discardLogger = zerolog.Nop()

func newCatalogService(repo ports.CatalogRepository) *CatalogService {
	return NewCatalogService(repo, &seqIDs{}, domain.NewLinkBuilder(""), "", discardLogger)
}

// ---------------------------------------------------------------------------
// AddProduct tests
// ---------------------------------------------------------------------------

func TestCatalogService_Add_AppendsWithFreshID(t *testing.T) {
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	view, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name:      "Test",
		PriceText: "50",
		ImageURL:  "http://x/y.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.products) != 7 {
		t.Fatalf("expected 7 products, got %d", len(repo.products))
	}
	last := repo.products[len(repo.products)-1]
	if last.ID != view.ID {
		t.Errorf("view id %q != stored id %q", view.ID, last.ID)
	}
	for _, p := range repo.products[:6] {
		if p.ID == last.ID {
			t.Errorf("generated id %q collides with seed id", last.ID)
		}
	}
	if last.Price != 50 {
		t.Errorf("price = %v, want 50", last.Price)
	}
	if last.PriceDisplay != "50" {
		t.Errorf("priceDisplay = %q, want %q", last.PriceDisplay, "50")
	}
	if last.Name != "Test" || last.ImageURL != "http://x/y.png" {
		t.Errorf("unexpected stored product: %+v", last)
	}
}

func TestCatalogService_Add_TrimsAndKeepsDisplayText(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newCatalogService(repo)

	view, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name:      "  Sticker  ",
		PriceText: " MRP 299 ",
		ImageURL:  " http://x/s.png ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := repo.products[0]
	if stored.Name != "Sticker" {
		t.Errorf("name = %q", stored.Name)
	}
	if stored.Price != 299 {
		t.Errorf("price = %v, want 299", stored.Price)
	}
	if stored.PriceDisplay != "MRP 299" {
		t.Errorf("priceDisplay = %q", stored.PriceDisplay)
	}
	if view.PriceDisplay != "MRP 299" {
		t.Errorf("view priceDisplay = %q", view.PriceDisplay)
	}
}

func TestCatalogService_Add_AllFieldErrorsAtOnce(t *testing.T) {
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name:      "   ",
		PriceText: "",
		ImageURL:  "",
	})

	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fieldErrs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(fieldErrs), fieldErrs)
	}
	if fieldErrs["name"] != "Product name is required" {
		t.Errorf("name error = %q", fieldErrs["name"])
	}
	if fieldErrs["price"] != "Price is required" {
		t.Errorf("price error = %q", fieldErrs["price"])
	}
	if fieldErrs["image_url"] != "Image URL is required" {
		t.Errorf("image_url error = %q", fieldErrs["image_url"])
	}
	if len(repo.products) != 6 {
		t.Errorf("no mutation expected on validation failure, got %d products", len(repo.products))
	}
}

func TestCatalogService_Add_InvalidPriceMessage(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newCatalogService(repo)

	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name:      "Test",
		PriceText: "free!!",
		ImageURL:  "http://x/y.png",
	})

	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fieldErrs["price"] != "Price must be a valid number greater than 0" {
		t.Errorf("price error = %q", fieldErrs["price"])
	}
	if _, ok := fieldErrs["name"]; ok {
		t.Error("name should not fail")
	}
}

func TestCatalogService_Add_RepoError(t *testing.T) {
	repo := newStubCatalogRepo()
	repo.appendErr = errors.New("store unavailable")
	svc := newCatalogService(repo)

	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name:      "Test",
		PriceText: "50",
		ImageURL:  "http://x/y.png",
	})
	if err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// UpdateProduct tests
// ---------------------------------------------------------------------------

func strPtr(s string) *string { return &s }

func TestCatalogService_Update_PartialFields(t *testing.T) {
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	err := svc.UpdateProduct(context.Background(), "2", ports.UpdateProductInput{
		PriceText: strPtr("A50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := repo.products[1]
	if updated.ID != "2" {
		t.Fatalf("order changed: product at index 1 is %q", updated.ID)
	}
	if updated.Price != 50 {
		t.Errorf("price = %v, want 50", updated.Price)
	}
	if updated.PriceDisplay != "A50" {
		t.Errorf("priceDisplay = %q, want %q", updated.PriceDisplay, "A50")
	}
	// Untouched fields survive.
	if updated.Name != "Smart Watch Pro" {
		t.Errorf("name changed: %q", updated.Name)
	}
	if updated.ImageURL == "" {
		t.Error("image url lost")
	}
}

func TestCatalogService_Update_UnknownIDIsNoOp(t *testing.T) {
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	before, _ := repo.List(context.Background())

	err := svc.UpdateProduct(context.Background(), "no-such-id", ports.UpdateProductInput{
		Name: strPtr("Ghost"),
	})
	if err != nil {
		t.Fatalf("unknown id must be a no-op, got error: %v", err)
	}

	after, _ := repo.List(context.Background())
	if len(after) != len(before) {
		t.Fatalf("catalog length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("product %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestCatalogService_Update_ValidatesSuppliedFields(t *testing.T) {
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	err := svc.UpdateProduct(context.Background(), "1", ports.UpdateProductInput{
		Name:      strPtr("  "),
		PriceText: strPtr("n/a"),
	})

	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fieldErrs["name"] != "Product name is required" {
		t.Errorf("name error = %q", fieldErrs["name"])
	}
	if fieldErrs["price"] != "Price must be a valid number greater than 0" {
		t.Errorf("price error = %q", fieldErrs["price"])
	}
	if repo.products[0].Name != "Premium Wireless Headphones" {
		t.Error("product mutated despite validation failure")
	}
}

func TestCatalogService_Update_EmptyImageURLAccepted(t *testing.T) {
	// The edit form does not re-validate the image URL.
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	err := svc.UpdateProduct(context.Background(), "3", ports.UpdateProductInput{
		ImageURL: strPtr(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.products[2].ImageURL != "" {
		t.Errorf("image url = %q, want empty", repo.products[2].ImageURL)
	}
}

// ---------------------------------------------------------------------------
// ListProducts / link tests
// ---------------------------------------------------------------------------

func TestCatalogService_List_ResolvedViews(t *testing.T) {
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	view, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Products) != 6 {
		t.Fatalf("expected 6 products, got %d", len(view.Products))
	}
	if view.FallbackImageURL != domain.FallbackImageURL {
		t.Errorf("fallback url = %q", view.FallbackImageURL)
	}

	first := view.Products[0]
	if first.ID != "1" {
		t.Errorf("order wrong, first id = %q", first.ID)
	}
	if first.PriceDisplay != "2,999" {
		t.Errorf("resolved display price = %q, want %q", first.PriceDisplay, "2,999")
	}
	if first.BuyLink == "" {
		t.Error("buy link missing from view")
	}
}

func TestCatalogService_ProductBuyLink(t *testing.T) {
	repo := newStubCatalogRepo(domain.SeedProducts()...)
	svc := newCatalogService(repo)

	link, err := svc.ProductBuyLink(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.NewLinkBuilder("").BuyNowLink("Premium Wireless Headphones", 2999)
	if link != want {
		t.Errorf("link = %q, want %q", link, want)
	}

	if _, err := svc.ProductBuyLink(context.Background(), "nope"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}
