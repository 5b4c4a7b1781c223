package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/softdelete"
)

// RecordsUseCase altas, bajas lógicas, restauraciones y purgas del libro.
// Cada mutación sigue el mismo ciclo: fetch → mutar el snapshot → persist →
// anotar en la bitácora.
type RecordsUseCase struct {
	store ports.DatasetStore
	audit ports.AuditLog
	sd    *softdelete.Manager
	cfg   LedgerConfig
	now   func() time.Time
}

// NewRecordsUseCase construye el caso de uso de registros.
func NewRecordsUseCase(store ports.DatasetStore, audit ports.AuditLog, sd *softdelete.Manager, cfg LedgerConfig) *RecordsUseCase {
	return &RecordsUseCase{store: store, audit: audit, sd: sd, cfg: cfg, now: time.Now}
}

// fetchForWrite trae el dataset o uno vacío si el documento aún no existe
// (la primera alta del sistema lo crea).
func (uc *RecordsUseCase) fetchForWrite(ctx context.Context) (*entity.Dataset, error) {
	ds, err := uc.store.Fetch(ctx)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	if ds == nil {
		ds = &entity.Dataset{}
	}
	return ds, nil
}

func (uc *RecordsUseCase) year(ds *entity.Dataset, year string) string {
	if year != "" {
		return year
	}
	if ds.CurrentYear != "" {
		return ds.CurrentYear
	}
	return uc.cfg.DefaultYear
}

func (uc *RecordsUseCase) note(ctx context.Context, actor, action string, kind entity.RecordKind, id, year string, amount entity.Numeric) {
	if uc.audit == nil {
		return
	}
	// La bitácora es diagnóstico, no parte de la transacción: un fallo al
	// anotar no revierte una mutación ya persistida.
	_ = uc.audit.Append(ctx, ports.AuditEntry{
		Actor:    actor,
		Action:   action,
		Kind:     string(kind),
		RecordID: id,
		Year:     year,
		Amount:   amount,
		At:       uc.now(),
	})
}

// Create da de alta un registro con id nuevo y lo persiste.
func (uc *RecordsUseCase) Create(ctx context.Context, actor string, in dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	kind, ok := entity.ParseRecordKind(in.Kind)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	ds, err := uc.fetchForWrite(ctx)
	if err != nil {
		return nil, err
	}
	year := uc.year(ds, in.Year)

	rec := &entity.Record{
		ID:        entity.NormalizeID(uuid.New().String()),
		Date:      in.Date,
		Wagon:     in.Wagon,
		Company:   in.Company,
		Warehouse: in.Warehouse,
		Product:   in.Product,
		Client:    in.Client,
		Unit:      in.Unit,
		Quantity:  in.Quantity,
		QtyDoc:    in.QtyDoc,
		QtyFact:   in.QtyFact,
		Price:     in.Price,
		Total:     in.Total,
		Amount:    in.Amount,
		Notes:     in.Notes,
		User:      actor,
	}

	y := ds.EnsureYear(year)
	y.SetCollection(kind, append(y.Collection(kind), rec))
	ds.Touch(actor, uc.now())

	if err := uc.store.Persist(ctx, ds); err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	uc.note(ctx, actor, "created", kind, rec.ID.String(), year, moneyOfRecord(rec, kind))
	return &dto.RecordResponse{Kind: string(kind), Year: year, Record: rec}, nil
}

// Delete marca un registro como borrado.
func (uc *RecordsUseCase) Delete(ctx context.Context, actor, kind, id string) error {
	k, ok := entity.ParseRecordKind(kind)
	if !ok {
		return domain.ErrInvalidInput
	}
	ds, err := uc.fetchForWrite(ctx)
	if err != nil {
		return err
	}
	if err := uc.sd.MarkRecordDeleted(ds, k, id, actor); err != nil {
		return err
	}
	if err := uc.store.Persist(ctx, ds); err != nil {
		return domain.ErrUpstreamUnavailable
	}
	uc.note(ctx, actor, "deleted", k, id, "", entity.Numeric{})
	return nil
}

// Restore revierte un borrado lógico.
func (uc *RecordsUseCase) Restore(ctx context.Context, actor, kind, id string) error {
	k, ok := entity.ParseRecordKind(kind)
	if !ok {
		return domain.ErrInvalidInput
	}
	ds, err := uc.fetchForWrite(ctx)
	if err != nil {
		return err
	}
	if err := uc.sd.RestoreRecord(ds, k, id, actor); err != nil {
		return err
	}
	if err := uc.store.Persist(ctx, ds); err != nil {
		return domain.ErrUpstreamUnavailable
	}
	uc.note(ctx, actor, "restored", k, id, "", entity.Numeric{})
	return nil
}

// Purge elimina físicamente un registro ya borrado. Irreversible.
func (uc *RecordsUseCase) Purge(ctx context.Context, actor, kind, id string) error {
	k, ok := entity.ParseRecordKind(kind)
	if !ok {
		return domain.ErrInvalidInput
	}
	ds, err := uc.fetchForWrite(ctx)
	if err != nil {
		return err
	}
	if err := uc.sd.PurgeRecord(ds, k, id); err != nil {
		return err
	}
	ds.Touch(actor, uc.now())
	if err := uc.store.Persist(ctx, ds); err != nil {
		return domain.ErrUpstreamUnavailable
	}
	uc.note(ctx, actor, "purged", k, id, "", entity.Numeric{})
	return nil
}

// PurgeAll vacía la papelera de un año.
func (uc *RecordsUseCase) PurgeAll(ctx context.Context, actor, year string) (*dto.PurgeAllResponse, error) {
	ds, err := uc.fetchForWrite(ctx)
	if err != nil {
		return nil, err
	}
	y := uc.year(ds, year)
	n := uc.sd.PurgeAllDeleted(ds, y)
	if n > 0 {
		ds.Touch(actor, uc.now())
		if err := uc.store.Persist(ctx, ds); err != nil {
			return nil, domain.ErrUpstreamUnavailable
		}
		uc.note(ctx, actor, "purged", "", "", y, entity.Numeric{})
	}
	return &dto.PurgeAllResponse{Year: y, Purged: n}, nil
}

// DeleteRef marca una entrada de referencia como borrada.
func (uc *RecordsUseCase) DeleteRef(ctx context.Context, actor, collection, name string) error {
	ds, err := uc.fetchForWrite(ctx)
	if err != nil {
		return err
	}
	if err := uc.sd.MarkRefDeleted(ds, collection, name, actor); err != nil {
		return err
	}
	if err := uc.store.Persist(ctx, ds); err != nil {
		return domain.ErrUpstreamUnavailable
	}
	uc.note(ctx, actor, "deleted", entity.RecordKind(collection), name, "", entity.Numeric{})
	return nil
}

// RestoreRef revierte el borrado de una entrada de referencia.
func (uc *RecordsUseCase) RestoreRef(ctx context.Context, actor, collection, name string) error {
	ds, err := uc.fetchForWrite(ctx)
	if err != nil {
		return err
	}
	if err := uc.sd.RestoreRef(ds, collection, name, actor); err != nil {
		return err
	}
	if err := uc.store.Persist(ctx, ds); err != nil {
		return domain.ErrUpstreamUnavailable
	}
	uc.note(ctx, actor, "restored", entity.RecordKind(collection), name, "", entity.Numeric{})
	return nil
}

func moneyOfRecord(r *entity.Record, kind entity.RecordKind) entity.Numeric {
	if kind == entity.KindPayments {
		return r.Amount
	}
	return r.Total
}
