package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/application/usecase"
	"github.com/jhoicas/Avesta-api/internal/domain"
)

// ReportsHandler expone el motor de agregación y los exportes PDF.
type ReportsHandler struct {
	uc     *usecase.ReportingUseCase
	export *usecase.ExportUseCase
}

// NewReportsHandler construye el handler de reportes.
func NewReportsHandler(uc *usecase.ReportingUseCase, export *usecase.ExportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc, export: export}
}

// reportError traduce errores de dominio a HTTP.
func reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "datos no disponibles"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Stock godoc
// @Summary      Balance de stock
// @Tags         reports
// @Produce      json
// @Param        year  query  string  false  "año (por defecto el activo)"
// @Success      200   {object}  report.StockReport
// @Failure      503   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/stock [get]
func (h *ReportsHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.Context(), GetViewer(c), c.Query("year"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// FactBalance godoc
// @Summary      Balance fáctico por grupos de almacén
// @Tags         reports
// @Produce      json
// @Param        year  query  string  false  "año"
// @Success      200   {object}  report.FactBalanceReport
// @Security     BearerAuth
// @Router       /api/reports/fact-balance [get]
func (h *ReportsHandler) FactBalance(c *fiber.Ctx) error {
	out, err := h.uc.FactBalance(c.Context(), GetViewer(c), c.Query("year"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Debts godoc
// @Summary      Libro de deudas (solo deudores positivos)
// @Tags         reports
// @Produce      json
// @Param        year  query  string  false  "año"
// @Success      200   {array}  report.DebtRow
// @Security     BearerAuth
// @Router       /api/reports/debts [get]
func (h *ReportsHandler) Debts(c *fiber.Ctx) error {
	out, err := h.uc.Debts(c.Context(), GetViewer(c), c.Query("year"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// TopDebtors godoc
// @Summary      Mayores deudores
// @Tags         reports
// @Produce      json
// @Param        year   query  string  false  "año"
// @Param        limit  query  int     false  "cuántos (por defecto 10)"
// @Success      200    {array}  report.DebtRow
// @Security     BearerAuth
// @Router       /api/reports/debts/top [get]
func (h *ReportsHandler) TopDebtors(c *fiber.Ctx) error {
	out, err := h.uc.TopDebtors(c.Context(), GetViewer(c), c.Query("year"), c.QueryInt("limit", 10))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Wagons godoc
// @Summary      Totales de vagones
// @Tags         reports
// @Produce      json
// @Param        year  query  string  false  "año"
// @Success      200   {object}  report.WagonReport
// @Security     BearerAuth
// @Router       /api/reports/wagons [get]
func (h *ReportsHandler) Wagons(c *fiber.Ctx) error {
	out, err := h.uc.Wagons(c.Context(), GetViewer(c), c.Query("year"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Daily godoc
// @Summary      Reporte del día
// @Tags         reports
// @Produce      json
// @Param        year  query  string  false  "año"
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  report.DailyReport
// @Security     BearerAuth
// @Router       /api/reports/daily [get]
func (h *ReportsHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.Daily(c.Context(), GetViewer(c), c.Query("year"), c.Query("date"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Period godoc
// @Summary      Registros por período
// @Tags         reports
// @Produce      json
// @Param        kind  query  string  true   "income | expense | payments | partners"
// @Param        from  query  string  true   "YYYY-MM-DD"
// @Param        to    query  string  true   "YYYY-MM-DD"
// @Param        year  query  string  false  "año"
// @Success      200   {object}  report.PeriodReport
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/period [get]
func (h *ReportsHandler) Period(c *fiber.Ctx) error {
	out, err := h.uc.Period(c.Context(), GetViewer(c), c.Query("year"), c.Query("kind"), c.Query("from"), c.Query("to"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// TodayExpense godoc
// @Summary      Salidas del día por producto, en toneladas
// @Tags         reports
// @Produce      json
// @Param        year  query  string  false  "año"
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200   {array}  report.ProductTons
// @Security     BearerAuth
// @Router       /api/reports/today-expense [get]
func (h *ReportsHandler) TodayExpense(c *fiber.Ctx) error {
	out, err := h.uc.TodayExpense(c.Context(), GetViewer(c), c.Query("year"), c.Query("date"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// ClientCard godoc
// @Summary      Extracto de un cliente
// @Tags         reports
// @Produce      json
// @Param        client  query  string  true   "nombre del cliente"
// @Param        year    query  string  false  "año"
// @Success      200     {object}  report.ClientCard
// @Failure      400     {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/client-card [get]
func (h *ReportsHandler) ClientCard(c *fiber.Ctx) error {
	out, err := h.uc.ClientCard(c.Context(), GetViewer(c), c.Query("year"), c.Query("client"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Deudores con compra hace exactamente N días
// @Tags         reports
// @Produce      json
// @Param        year  query  string  false  "año"
// @Param        days  query  int     false  "N días atrás (por defecto el configurado)"
// @Success      200   {array}  report.Notification
// @Security     BearerAuth
// @Router       /api/reports/notifications [get]
func (h *ReportsHandler) Notifications(c *fiber.Ctx) error {
	out, err := h.uc.Notifications(c.Context(), GetViewer(c), c.Query("year"), c.QueryInt("days", 0))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// DebtsPDF godoc
// @Summary      Libro de deudas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        year  query  string  false  "año"
// @Success      200   {file}  binary
// @Security     BearerAuth
// @Router       /api/reports/debts/pdf [get]
func (h *ReportsHandler) DebtsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.export.DebtsPDF(c.Context(), GetViewer(c), c.Query("year"))
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="deudas.pdf"`)
	return c.Send(pdfBytes)
}

// ClientCardPDF godoc
// @Summary      Extracto de cliente en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        client  query  string  true   "nombre del cliente"
// @Param        year    query  string  false  "año"
// @Success      200     {file}  binary
// @Failure      400     {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/client-card/pdf [get]
func (h *ReportsHandler) ClientCardPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.export.ClientCardPDF(c.Context(), GetViewer(c), c.Query("year"), c.Query("client"))
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="extracto.pdf"`)
	return c.Send(pdfBytes)
}
