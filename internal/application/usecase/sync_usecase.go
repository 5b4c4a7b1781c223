package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/merge"
	"github.com/jhoicas/Avesta-api/pkg/logger"
)

// SyncUseCase reconcilia un snapshot local contra la copia cloud, persiste
// el resultado y archiva una copia histórica.
type SyncUseCase struct {
	store   ports.DatasetStore
	archive ports.SnapshotArchive
	log     *logger.Logger
	now     func() time.Time
}

// NewSyncUseCase construye el caso de uso de sincronización.
func NewSyncUseCase(store ports.DatasetStore, archive ports.SnapshotArchive, log *logger.Logger) *SyncUseCase {
	return &SyncUseCase{store: store, archive: archive, log: log, now: time.Now}
}

// Sync ejecuta una reconciliación completa. El snapshot local puede venir en
// el cuerpo de la petición; si no viene, se usa la última copia archivada.
func (uc *SyncUseCase) Sync(ctx context.Context, actor string, in dto.SyncRequest) (*dto.SyncResponse, error) {
	cloud, err := uc.store.Fetch(ctx)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}

	local := in.Dataset
	if local == nil && uc.archive != nil {
		local, err = uc.archive.Latest(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("snapshot archivado no disponible, se sincroniza solo contra cloud")
			local = nil
		}
	}

	now := uc.now()
	merged := merge.Reconcile(cloud, local, actor, now)
	if merged == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.store.Persist(ctx, merged); err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	if uc.archive != nil {
		if err := uc.archive.Save(ctx, merged, actor, now); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo archivar el snapshot reconciliado")
		}
	}

	years, records := countRecords(merged)
	uc.log.Info().
		Str("actor", actor).
		Int("years", years).
		Int("records", records).
		Msg("reconciliación completada")

	return &dto.SyncResponse{
		LastModified:   merged.LastModified,
		LastModifiedBy: merged.LastModifiedBy,
		Years:          years,
		Records:        records,
	}, nil
}

func countRecords(ds *entity.Dataset) (years, records int) {
	for _, y := range ds.Years {
		years++
		for _, kind := range entity.RecordKinds {
			records += len(y.Collection(kind))
		}
	}
	return years, records
}
