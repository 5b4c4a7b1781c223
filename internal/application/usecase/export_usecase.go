package usecase

import (
	"context"

	"github.com/jhoicas/Avesta-api/internal/application/ports"
)

// ExportUseCase convierte reportes en artefactos PDF descargables. El núcleo
// calcula las filas; el generador decide el formato.
type ExportUseCase struct {
	reporting *ReportingUseCase
	pdf       ports.ReportPDFGenerator
}

// NewExportUseCase construye el caso de uso de exportes.
func NewExportUseCase(reporting *ReportingUseCase, pdf ports.ReportPDFGenerator) *ExportUseCase {
	return &ExportUseCase{reporting: reporting, pdf: pdf}
}

// DebtsPDF genera el PDF del libro de deudas del año.
func (uc *ExportUseCase) DebtsPDF(ctx context.Context, v Viewer, year string) ([]byte, error) {
	ds, err := uc.reporting.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	y := uc.reporting.resolveYear(ds, year)
	rows, err := uc.reporting.Debts(ctx, v, y)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDebtsPDF(ctx, y, rows)
}

// ClientCardPDF genera el PDF del extracto de un cliente.
func (uc *ExportUseCase) ClientCardPDF(ctx context.Context, v Viewer, year, client string) ([]byte, error) {
	ds, err := uc.reporting.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	y := uc.reporting.resolveYear(ds, year)
	card, err := uc.reporting.ClientCard(ctx, v, y, client)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateClientCardPDF(ctx, y, card)
}
