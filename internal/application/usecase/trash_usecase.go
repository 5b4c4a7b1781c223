package usecase

import (
	"context"

	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/report"
)

// TrashUseCase lista el contenido de la papelera: el complemento exacto de
// las vistas activas.
type TrashUseCase struct {
	store ports.DatasetStore
	cfg   LedgerConfig
}

// NewTrashUseCase construye el caso de uso de papelera.
func NewTrashUseCase(store ports.DatasetStore, cfg LedgerConfig) *TrashUseCase {
	return &TrashUseCase{store: store, cfg: cfg}
}

// List devuelve lo borrado y no purgado del año.
func (uc *TrashUseCase) List(ctx context.Context, v Viewer, year string) (*report.TrashReport, error) {
	ds, err := uc.store.Fetch(ctx)
	if err != nil || ds == nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	if year == "" {
		year = ds.CurrentYear
	}
	if year == "" {
		year = uc.cfg.DefaultYear
	}
	return report.Trash(ds, year, access.ForGroups(ds, v.Role, v.Groups)), nil
}
