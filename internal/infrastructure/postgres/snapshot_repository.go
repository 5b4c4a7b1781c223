package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

var _ ports.SnapshotArchive = (*SnapshotRepo)(nil)

// SnapshotRepo archivo histórico del dataset en JSONB.
//
//	CREATE TABLE ledger_snapshots (
//	    id       UUID PRIMARY KEY,
//	    taken_by TEXT NOT NULL,
//	    taken_at TIMESTAMPTZ NOT NULL,
//	    doc      JSONB NOT NULL
//	);
type SnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye el adaptador de snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// Save archiva una copia completa del dataset.
func (r *SnapshotRepo) Save(ctx context.Context, ds *entity.Dataset, actor string, at time.Time) error {
	doc, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("serializar snapshot: %w", err)
	}
	query := `
		INSERT INTO ledger_snapshots (id, taken_by, taken_at, doc)
		VALUES ($1, $2, $3, $4)`
	_, err = r.pool.Exec(ctx, query, uuid.New().String(), actor, at, doc)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest devuelve la copia archivada más reciente, o (nil, nil) si el
// archivo está vacío.
func (r *SnapshotRepo) Latest(ctx context.Context) (*entity.Dataset, error) {
	query := `
		SELECT doc FROM ledger_snapshots
		ORDER BY taken_at DESC
		LIMIT 1`
	var doc []byte
	err := r.pool.QueryRow(ctx, query).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}
	var ds entity.Dataset
	if err := json.Unmarshal(doc, &ds); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	return &ds, nil
}
