package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minoq/storefront/internal/core/ports"
)

// LinkHandler serves the outbound WhatsApp deep links.
type LinkHandler struct {
	service ports.CatalogService
}

func NewLinkHandler(service ports.CatalogService) *LinkHandler {
	return &LinkHandler{service: service}
}

// BuyNow handles GET /v1/products/:id/buy-link.
//
// @Summary      Build the Buy Now deep link for a product
// @Tags         links
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  linkResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id}/buy-link [get]
func (h *LinkHandler) BuyNow(c echo.Context) error {
	link, err := h.service.ProductBuyLink(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, linkResponse{Link: link})
}

// Help handles GET /v1/help-link.
//
// @Summary      Build the fixed help deep link
// @Tags         links
// @Produce      json
// @Success      200  {object}  linkResponse
// @Router       /v1/help-link [get]
func (h *LinkHandler) Help(c echo.Context) error {
	return c.JSON(http.StatusOK, linkResponse{Link: h.service.HelpLink()})
}
