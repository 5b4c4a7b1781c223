// Package ports define los puertos de salida de la capa de aplicación: el
// almacén compartido del dataset, el archivo histórico de snapshots, la
// bitácora de mutaciones y el generador de reportes PDF.
package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/report"
)

// DatasetStore es el documento compartido en el backend remoto. Fetch
// devuelve (nil, nil) cuando el documento aún no existe; Persist reemplaza
// el documento completo, todo o nada.
type DatasetStore interface {
	Fetch(ctx context.Context) (*entity.Dataset, error)
	Persist(ctx context.Context, ds *entity.Dataset) error
}

// SnapshotArchive guarda copias históricas del dataset para auditoría y como
// lado "local" de una reconciliación posterior.
type SnapshotArchive interface {
	Save(ctx context.Context, ds *entity.Dataset, actor string, at time.Time) error
	Latest(ctx context.Context) (*entity.Dataset, error)
}

// AuditEntry es una mutación anotada en la bitácora.
type AuditEntry struct {
	Actor    string
	Action   string // created | deleted | restored | purged | synced
	Kind     string
	RecordID string
	Year     string
	Amount   entity.Numeric
	At       time.Time
}

// AuditLog persiste la bitácora de mutaciones del libro.
type AuditLog interface {
	Append(ctx context.Context, e AuditEntry) error
}

// ReportPDFGenerator convierte agregados ya calculados en un PDF
// descargable. El núcleo entrega filas planas; el formato es cosa del
// adaptador.
type ReportPDFGenerator interface {
	GenerateDebtsPDF(ctx context.Context, year string, rows []report.DebtRow) ([]byte, error)
	GenerateClientCardPDF(ctx context.Context, year string, card *report.ClientCard) ([]byte, error)
}
