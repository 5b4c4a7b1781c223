// Package usecase orquesta las operaciones de la API sobre el dataset
// compartido: reportes, altas y bajas del libro, papelera, sincronización y
// exportes PDF.
package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/report"
)

// Viewer identifica al solicitante de un reporte: lo que viaja en el token.
type Viewer struct {
	Username string
	Role     string
	Groups   []string
}

// LedgerConfig parámetros del libro.
type LedgerConfig struct {
	DefaultYear      string
	NotificationDays int
}

// ReportingUseCase ejecuta el motor de agregación sobre el snapshot actual
// del dataset, con el alcance de visibilidad del solicitante aplicado como
// pre-filtro.
type ReportingUseCase struct {
	store ports.DatasetStore
	cfg   LedgerConfig
	now   func() time.Time
}

// NewReportingUseCase construye el caso de uso de reportes.
func NewReportingUseCase(store ports.DatasetStore, cfg LedgerConfig) *ReportingUseCase {
	return &ReportingUseCase{store: store, cfg: cfg, now: time.Now}
}

// snapshot trae el dataset actual. Un fetch fallido o un documento ausente
// son el mismo resultado de cara al usuario: datos no disponibles.
func (uc *ReportingUseCase) snapshot(ctx context.Context) (*entity.Dataset, error) {
	ds, err := uc.store.Fetch(ctx)
	if err != nil || ds == nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	return ds, nil
}

// resolveYear decide el año efectivo: el pedido, el año activo del dataset o
// el default de configuración, en ese orden.
func (uc *ReportingUseCase) resolveYear(ds *entity.Dataset, year string) string {
	if year != "" {
		return year
	}
	if ds.CurrentYear != "" {
		return ds.CurrentYear
	}
	return uc.cfg.DefaultYear
}

func (uc *ReportingUseCase) scope(ds *entity.Dataset, v Viewer) *access.Scope {
	return access.ForGroups(ds, v.Role, v.Groups)
}

// Stock balance de stock del año.
func (uc *ReportingUseCase) Stock(ctx context.Context, v Viewer, year string) (*report.StockReport, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.Stock(ds, uc.resolveYear(ds, year), uc.scope(ds, v)), nil
}

// FactBalance balance fáctico agrupado por grupos de almacén.
func (uc *ReportingUseCase) FactBalance(ctx context.Context, v Viewer, year string) (*report.FactBalanceReport, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.FactBalance(ds, uc.resolveYear(ds, year), uc.scope(ds, v)), nil
}

// Debts deudores del año ordenados por nombre.
func (uc *ReportingUseCase) Debts(ctx context.Context, v Viewer, year string) ([]report.DebtRow, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.Debts(ds, uc.resolveYear(ds, year), uc.scope(ds, v)), nil
}

// TopDebtors los n mayores deudores.
func (uc *ReportingUseCase) TopDebtors(ctx context.Context, v Viewer, year string, n int) ([]report.DebtRow, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.TopDebtors(ds, uc.resolveYear(ds, year), n, uc.scope(ds, v)), nil
}

// Wagons resumen de vagones del año.
func (uc *ReportingUseCase) Wagons(ctx context.Context, v Viewer, year string) (*report.WagonReport, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.Wagons(ds, uc.resolveYear(ds, year), uc.scope(ds, v)), nil
}

// Daily reporte del día. date vacía usa hoy.
func (uc *ReportingUseCase) Daily(ctx context.Context, v Viewer, year, date string) (*report.DailyReport, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = uc.now().Format("2006-01-02")
	}
	return report.Daily(ds, uc.resolveYear(ds, year), date, uc.scope(ds, v)), nil
}

// Period registros de un tipo en un rango de fechas inclusivo.
func (uc *ReportingUseCase) Period(ctx context.Context, v Viewer, year, kind, from, to string) (*report.PeriodReport, error) {
	k, ok := entity.ParseRecordKind(kind)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	// Un extremo vacío deja el rango abierto por ese lado.
	if from != "" && to != "" && from > to {
		return nil, domain.ErrInvalidInput
	}
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.Period(ds, uc.resolveYear(ds, year), k, from, to, uc.scope(ds, v)), nil
}

// TodayExpense salidas del día por producto, en toneladas.
func (uc *ReportingUseCase) TodayExpense(ctx context.Context, v Viewer, year, date string) ([]report.ProductTons, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = uc.now().Format("2006-01-02")
	}
	return report.TodayExpense(ds, uc.resolveYear(ds, year), date, uc.scope(ds, v)), nil
}

// ClientCard extracto de un cliente.
func (uc *ReportingUseCase) ClientCard(ctx context.Context, v Viewer, year, client string) (*report.ClientCard, error) {
	if client == "" {
		return nil, domain.ErrInvalidInput
	}
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return report.Card(ds, uc.resolveYear(ds, year), client, uc.scope(ds, v)), nil
}

// Notifications clientes que compraron hace exactamente days días y siguen
// debiendo. days ≤ 0 usa el default de configuración.
func (uc *ReportingUseCase) Notifications(ctx context.Context, v Viewer, year string, days int) ([]report.Notification, error) {
	ds, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = uc.cfg.NotificationDays
	}
	date := report.DateDaysAgo(uc.now(), days)
	return report.DebtorsWithPurchaseOn(ds, uc.resolveYear(ds, year), date, uc.scope(ds, v)), nil
}
