package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Avesta-api/internal/application/auth"
	"github.com/jhoicas/Avesta-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ReportingUC *usecase.ReportingUseCase
	ExportUC    *usecase.ExportUseCase
	RecordsUC   *usecase.RecordsUseCase
	TrashUC     *usecase.TrashUseCase
	SyncUC      *usecase.SyncUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reportes (cualquier rol; el alcance por grupos se aplica dentro)
	reports := protected.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ReportingUC, deps.ExportUC)
	reports.Get("/stock", reportsHandler.Stock)
	reports.Get("/fact-balance", reportsHandler.FactBalance)
	reports.Get("/debts", reportsHandler.Debts)
	reports.Get("/debts/top", reportsHandler.TopDebtors)
	reports.Get("/debts/pdf", reportsHandler.DebtsPDF)
	reports.Get("/wagons", reportsHandler.Wagons)
	reports.Get("/daily", reportsHandler.Daily)
	reports.Get("/period", reportsHandler.Period)
	reports.Get("/today-expense", reportsHandler.TodayExpense)
	reports.Get("/client-card", reportsHandler.ClientCard)
	reports.Get("/client-card/pdf", reportsHandler.ClientCardPDF)
	reports.Get("/notifications", reportsHandler.Notifications)

	// Mutaciones del libro (solo admin)
	admin := protected.Group("/", RequireAdmin())
	recordsHandler := NewRecordsHandler(deps.RecordsUC)
	records := admin.Group("/records")
	records.Post("/", recordsHandler.Create)
	records.Delete("/:kind/:id", recordsHandler.Delete)
	records.Post("/:kind/:id/restore", recordsHandler.Restore)
	records.Delete("/:kind/:id/purge", recordsHandler.Purge)

	refs := admin.Group("/refs")
	refs.Delete("/:collection/:name", recordsHandler.DeleteRef)
	refs.Post("/:collection/:name/restore", recordsHandler.RestoreRef)

	// Papelera (solo admin)
	trashHandler := NewTrashHandler(deps.TrashUC, deps.RecordsUC)
	trash := admin.Group("/trash")
	trash.Get("/", trashHandler.List)
	trash.Delete("/", trashHandler.Empty)

	// Sincronización (solo admin)
	syncHandler := NewSyncHandler(deps.SyncUC)
	admin.Post("/sync", syncHandler.Sync)
}
