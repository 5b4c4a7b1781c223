package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/application/usecase"
	"github.com/jhoicas/Avesta-api/internal/domain"
)

// RecordsHandler altas, bajas, restauraciones y purgas del libro. Todas las
// rutas exigen rol admin.
type RecordsHandler struct {
	uc *usecase.RecordsUseCase
}

// NewRecordsHandler construye el handler de registros.
func NewRecordsHandler(uc *usecase.RecordsUseCase) *RecordsHandler {
	return &RecordsHandler{uc: uc}
}

func recordError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "datos no disponibles"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create godoc
// @Summary      Crear registro
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecordRequest  true  "registro"
// @Success      201   {object}  dto.RecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/records [post]
func (h *RecordsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUsername(c), in)
	if err != nil {
		return recordError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Borrado lógico de un registro
// @Tags         records
// @Produce      json
// @Param        kind  path  string  true  "income | expense | payments | partners"
// @Param        id    path  string  true  "id del registro"
// @Success      204   "borrado"
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/records/{kind}/{id} [delete]
func (h *RecordsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUsername(c), c.Params("kind"), c.Params("id")); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restaurar un registro borrado
// @Tags         records
// @Produce      json
// @Param        kind  path  string  true  "colección"
// @Param        id    path  string  true  "id del registro"
// @Success      204   "restaurado"
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/records/{kind}/{id}/restore [post]
func (h *RecordsHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), GetUsername(c), c.Params("kind"), c.Params("id")); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Purge godoc
// @Summary      Purga física de un registro borrado (irreversible)
// @Tags         records
// @Produce      json
// @Param        kind  path  string  true  "colección"
// @Param        id    path  string  true  "id del registro"
// @Success      204   "purgado"
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/records/{kind}/{id}/purge [delete]
func (h *RecordsHandler) Purge(c *fiber.Ctx) error {
	if err := h.uc.Purge(c.Context(), GetUsername(c), c.Params("kind"), c.Params("id")); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteRef godoc
// @Summary      Borrado lógico de una entrada de referencia
// @Tags         records
// @Produce      json
// @Param        collection  path  string  true  "clients | products | companies | warehouses | warehouseGroups | coalitions"
// @Param        name        path  string  true  "nombre de la entrada"
// @Success      204         "borrada"
// @Failure      404         {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/refs/{collection}/{name} [delete]
func (h *RecordsHandler) DeleteRef(c *fiber.Ctx) error {
	if err := h.uc.DeleteRef(c.Context(), GetUsername(c), c.Params("collection"), c.Params("name")); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RestoreRef godoc
// @Summary      Restaurar una entrada de referencia borrada
// @Tags         records
// @Produce      json
// @Param        collection  path  string  true  "colección de referencia"
// @Param        name        path  string  true  "nombre de la entrada"
// @Success      204         "restaurada"
// @Failure      404         {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/refs/{collection}/{name}/restore [post]
func (h *RecordsHandler) RestoreRef(c *fiber.Ctx) error {
	if err := h.uc.RestoreRef(c.Context(), GetUsername(c), c.Params("collection"), c.Params("name")); err != nil {
		return recordError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
