package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minoq/storefront/internal/core/ports"
)

// NoteHandler exposes the admin change note. Persistence is best-effort in
// the service, so these handlers never report storage failures.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// Get handles GET /v1/admin/notes.
//
// @Summary      Read the admin change note
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  noteResponse
// @Router       /v1/admin/notes [get]
func (h *NoteHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, noteResponse{Note: h.service.Read(c.Request().Context())})
}

// Put handles PUT /v1/admin/notes.
//
// @Summary      Replace the admin change note
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  noteRequest  true  "Note text"
// @Success      204   "stored (best effort)"
// @Router       /v1/admin/notes [put]
func (h *NoteHandler) Put(c echo.Context) error {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	h.service.Write(c.Request().Context(), req.Note)
	return c.NoContent(http.StatusNoContent)
}
