package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
)

// CatalogHandler handles HTTP requests for storefront catalog operations.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List handles GET /v1/products.
//
// @Summary      List the product catalog in display order
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  listProductsResponse
// @Failure      500  {object}  map[string]string
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	view, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{
		Products:         view.Products,
		FallbackImageURL: view.FallbackImageURL,
	})
}

// Create handles POST /v1/admin/products.
//
// @Summary      Add a product to the catalog
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addProductRequest  true  "Product fields; price accepts free text"
// @Success      201   {object}  ports.ProductView
// @Failure      400   {object}  map[string]map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin/products [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.AddProduct(c.Request().Context(), ports.AddProductInput{
		Name:      req.Name,
		PriceText: req.Price,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.JSON(http.StatusBadRequest, fieldErrorEnvelope{Errors: fieldErrs})
		}
		return err
	}

	return c.JSON(http.StatusCreated, view)
}

// Update handles PATCH /v1/admin/products/:id.
//
// @Summary      Partially update a product
// @Description  Replaces only the supplied fields. Unknown ids are a no-op.
// @Tags         catalog
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to replace"
// @Success      204   "updated (or unknown id, by policy)"
// @Failure      400   {object}  map[string]map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin/products/{id} [patch]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:      req.Name,
		PriceText: req.Price,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.JSON(http.StatusBadRequest, fieldErrorEnvelope{Errors: fieldErrs})
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// fieldErrorEnvelope mirrors the central error handler's shape for per-field
// validation failures surfaced directly by handlers.
type fieldErrorEnvelope struct {
	Errors domain.FieldErrors `json:"errors"`
}
