// Package pdf genera los reportes descargables del libro con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: título del reporte + año + fecha emisión   │
//	│  ─────────────────────────────────────────────────  │
//	│  TABLA: filas del agregado ya calculado             │
//	│  ─────────────────────────────────────────────────  │
//	│  TOTALES                                            │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotocfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Avesta-api/internal/application/ports"
	"github.com/jhoicas/Avesta-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := marotocfg.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: título (izq) + fecha de emisión (der).
func headerRow(title, subtitle string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(subtitle, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{Size: 9, Align: align.Right, Top: 2, Color: colorGray}),
		),
	)
}

// GenerateDebtsPDF genera el libro de deudas del año.
func (g *MarotoReportGenerator) GenerateDebtsPDF(_ context.Context, year string, rows []report.DebtRow) ([]byte, error) {
	m := newDocument("Libro de deudas")
	m.AddRows(headerRow("Libro de deudas", "Año "+year))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(7).Add(
		headerCell(5, "Cliente"),
		headerCell(3, "Compras"),
		headerCell(2, "Pagos"),
		headerCell(2, "Deuda"),
	))

	total := report.DebtRow{}
	for _, r := range rows {
		m.AddRows(row.New(5).Add(
			bodyCell(5, r.Client, align.Left),
			bodyCell(3, r.Total.String(), align.Right),
			bodyCell(2, r.Paid.String(), align.Right),
			bodyCell(2, r.Debt.String(), align.Right),
		))
		total.Total = total.Total.AddN(r.Total)
		total.Paid = total.Paid.AddN(r.Paid)
		total.Debt = total.Debt.AddN(r.Debt)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(7).Add(
		col.New(5).Add(text.New(fmt.Sprintf("Deudores: %d", len(rows)), props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(3).Add(text.New(total.Total.String(), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(total.Paid.String(), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(total.Debt.String(), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: colorPrimary})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateClientCardPDF genera el extracto de un cliente: compras, pagos y saldo.
func (g *MarotoReportGenerator) GenerateClientCardPDF(_ context.Context, year string, card *report.ClientCard) ([]byte, error) {
	m := newDocument("Extracto de cliente")
	m.AddRows(headerRow(card.Client, "Año "+year))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Compras"))
	m.AddRows(row.New(7).Add(
		headerCell(3, "Fecha"),
		headerCell(4, "Producto"),
		headerCell(2, "Cantidad"),
		headerCell(3, "Total"),
	))
	for _, r := range card.Purchases {
		m.AddRows(row.New(5).Add(
			bodyCell(3, r.Date, align.Left),
			bodyCell(4, r.Product, align.Left),
			bodyCell(2, r.Quantity.String(), align.Right),
			bodyCell(3, r.Total.String(), align.Right),
		))
	}

	m.AddRows(sectionTitle("Pagos"))
	m.AddRows(row.New(7).Add(
		headerCell(3, "Fecha"),
		headerCell(6, "Nota"),
		headerCell(3, "Monto"),
	))
	for _, r := range card.Payments {
		m.AddRows(row.New(5).Add(
			bodyCell(3, r.Date, align.Left),
			bodyCell(6, r.NoteText(), align.Left),
			bodyCell(3, r.Amount.String(), align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(7).Add(
		col.New(6).Add(text.New("Saldo", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
		col.New(6).Add(text.New(card.Debt.String(), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Celdas ────────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2})),
	)
}

func headerCell(size int, s string) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}))
}

func bodyCell(size int, s string, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
}
