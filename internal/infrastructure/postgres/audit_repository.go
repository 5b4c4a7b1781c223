package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Avesta-api/internal/application/ports"
)

var _ ports.AuditLog = (*AuditRepo)(nil)

// AuditRepo bitácora de mutaciones del libro.
//
//	CREATE TABLE ledger_audit (
//	    id        UUID PRIMARY KEY,
//	    actor     TEXT NOT NULL,
//	    action    TEXT NOT NULL,
//	    kind      TEXT NOT NULL DEFAULT '',
//	    record_id TEXT NOT NULL DEFAULT '',
//	    year      TEXT NOT NULL DEFAULT '',
//	    amount    NUMERIC NOT NULL DEFAULT 0,
//	    at        TIMESTAMPTZ NOT NULL
//	);
type AuditRepo struct {
	pool *pgxpool.Pool
}

// NewAuditRepository construye el adaptador de bitácora.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Append anota una mutación. El monto viaja como NUMERIC vía el codec de
// decimales registrado en el pool.
func (r *AuditRepo) Append(ctx context.Context, e ports.AuditEntry) error {
	query := `
		INSERT INTO ledger_audit (id, actor, action, kind, record_id, year, amount, at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		uuid.New().String(), e.Actor, e.Action, e.Kind, e.RecordID, e.Year,
		e.Amount.Decimal, e.At,
	)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}
