package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Avesta-api/internal/application/usecase"
)

// TrashHandler lista y vacía la papelera. Solo admin.
type TrashHandler struct {
	trash   *usecase.TrashUseCase
	records *usecase.RecordsUseCase
}

// NewTrashHandler construye el handler de papelera.
func NewTrashHandler(trash *usecase.TrashUseCase, records *usecase.RecordsUseCase) *TrashHandler {
	return &TrashHandler{trash: trash, records: records}
}

// List godoc
// @Summary      Contenido de la papelera
// @Tags         trash
// @Produce      json
// @Param        year  query  string  false  "año"
// @Success      200   {object}  report.TrashReport
// @Failure      503   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/trash [get]
func (h *TrashHandler) List(c *fiber.Ctx) error {
	out, err := h.trash.List(c.Context(), GetViewer(c), c.Query("year"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Empty godoc
// @Summary      Vaciar la papelera del año (irreversible)
// @Tags         trash
// @Produce      json
// @Param        year  query  string  false  "año"
// @Success      200   {object}  dto.PurgeAllResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/trash [delete]
func (h *TrashHandler) Empty(c *fiber.Ctx) error {
	out, err := h.records.PurgeAll(c.Context(), GetUsername(c), c.Query("year"))
	if err != nil {
		return recordError(c, err)
	}
	return c.JSON(out)
}
