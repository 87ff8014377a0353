package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
)

// stubCatalogService records calls and returns canned results.
type stubCatalogService struct {
	addErr     error
	addView    *ports.ProductView
	updateErr  error
	lastAdd    ports.AddProductInput
	lastUpdate ports.UpdateProductInput
	lastID     string
}

func (s *stubCatalogService) ListProducts(context.Context) (*ports.CatalogView, error) {
	return &ports.CatalogView{
		Products: []ports.ProductView{
			{ID: "1", Name: "Premium Wireless Headphones", Price: 2999, PriceDisplay: "2,999"},
		},
		FallbackImageURL: domain.FallbackImageURL,
	}, nil
}

func (s *stubCatalogService) AddProduct(_ context.Context, input ports.AddProductInput) (*ports.ProductView, error) {
	s.lastAdd = input
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.addView, nil
}

func (s *stubCatalogService) UpdateProduct(_ context.Context, id string, input ports.UpdateProductInput) error {
	s.lastID = id
	s.lastUpdate = input
	return s.updateErr
}

func (s *stubCatalogService) ProductBuyLink(context.Context, string) (string, error) {
	return "https://wa.me/918240316884?text=x", nil
}

func (s *stubCatalogService) HelpLink() string {
	return "https://wa.me/918240316884?text=y"
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_List(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{})
	c, rec := newTestContext(t, http.MethodGet, "/v1/products", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listProductsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Products) != 1 || resp.Products[0].PriceDisplay != "2,999" {
		t.Errorf("unexpected payload: %+v", resp)
	}
	if resp.FallbackImageURL == "" {
		t.Error("fallback image url missing")
	}
}

func TestCatalogHandler_Create_Success(t *testing.T) {
	svc := &stubCatalogService{
		addView: &ports.ProductView{ID: "gen-1", Name: "Test", Price: 50, PriceDisplay: "50"},
	}
	h := NewCatalogHandler(svc)
	c, rec := newTestContext(t, http.MethodPost, "/v1/admin/products",
		`{"name":"Test","price":"50","image_url":"http://x/y.png"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastAdd.PriceText != "50" || svc.lastAdd.ImageURL != "http://x/y.png" {
		t.Errorf("input not forwarded: %+v", svc.lastAdd)
	}
}

func TestCatalogHandler_Create_AllFieldErrors(t *testing.T) {
	svc := &stubCatalogService{
		addErr: domain.FieldErrors{
			"name":      "Product name is required",
			"price":     "Price is required",
			"image_url": "Image URL is required",
		},
	}
	h := NewCatalogHandler(svc)
	c, rec := newTestContext(t, http.MethodPost, "/v1/admin/products", `{}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) != 3 {
		t.Fatalf("expected all 3 field errors at once, got %v", resp.Errors)
	}
	if resp.Errors["price"] != "Price is required" {
		t.Errorf("price message = %q", resp.Errors["price"])
	}
}

func TestCatalogHandler_Update_PartialBody(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)
	c, rec := newTestContext(t, http.MethodPatch, "/", `{"price":"A50"}`)
	c.SetPath("/v1/admin/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.lastID != "2" {
		t.Errorf("id = %q", svc.lastID)
	}
	if svc.lastUpdate.PriceText == nil || *svc.lastUpdate.PriceText != "A50" {
		t.Errorf("price not forwarded: %+v", svc.lastUpdate)
	}
	if svc.lastUpdate.Name != nil {
		t.Error("absent name must stay nil")
	}
}

func TestCatalogHandler_Update_UnknownIDStill204(t *testing.T) {
	// The service treats unknown ids as a no-op; the handler reports 204.
	svc := &stubCatalogService{}
	h := NewCatalogHandler(svc)
	c, rec := newTestContext(t, http.MethodPatch, "/", `{"name":"Ghost"}`)
	c.SetPath("/v1/admin/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("no-such-id")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
