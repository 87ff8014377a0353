package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
)

// AccessHandler handles the admin access gate.
type AccessHandler struct {
	service ports.AccessService
}

func NewAccessHandler(service ports.AccessService) *AccessHandler {
	return &AccessHandler{service: service}
}

// Submit handles POST /v1/admin/access.
//
// @Summary      Submit the admin access code
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      accessRequest  true  "Access code"
// @Success      200   {object}  accessResponse
// @Failure      401   {object}  map[string]string
// @Router       /v1/admin/access [post]
func (h *AccessHandler) Submit(c echo.Context) error {
	var req accessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		// Malformed input is indistinguishable from a wrong code.
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access Denied"})
	}

	grant, err := h.service.Submit(c.Request().Context(), req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			// Same generic message for every failure mode.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Access Denied"})
		}
		return err
	}

	return c.JSON(http.StatusOK, accessResponse{
		Token:     grant.Token,
		ExpiresAt: grant.ExpiresAt,
	})
}
