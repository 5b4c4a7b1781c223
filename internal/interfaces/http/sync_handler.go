package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/application/usecase"
	"github.com/jhoicas/Avesta-api/internal/infrastructure/firebase"
)

// SyncHandler dispara la reconciliación del dataset. Solo admin.
type SyncHandler struct {
	uc *usecase.SyncUseCase
}

// NewSyncHandler construye el handler de sincronización.
func NewSyncHandler(uc *usecase.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Sync godoc
// @Summary      Reconciliar snapshot local contra la copia cloud
// @Description  El cuerpo puede traer el snapshot local en cualquiera de sus
// @Description  formas históricas (envuelto en retailAppData, en data, o
// @Description  plano). Sin cuerpo, se usa la última copia archivada.
// @Tags         sync
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/sync [post]
func (h *SyncHandler) Sync(c *fiber.Ctx) error {
	var in dto.SyncRequest
	if body := c.Body(); len(body) > 0 {
		ds, err := firebase.Unwrap(body)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "snapshot ilegible"})
		}
		in.Dataset = ds
	}
	out, err := h.uc.Sync(c.Context(), GetUsername(c), in)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}
