package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/report"
)

func purchase(id, client string, total float64) *entity.Record {
	return &entity.Record{
		ID: entity.RecordID(id), Date: "2026-02-10",
		Client: client, Total: entity.NFromFloat(total),
	}
}

func payment(id, client string, amount float64) *entity.Record {
	return &entity.Record{
		ID: entity.RecordID(id), Date: "2026-02-15",
		Client: client, Amount: entity.NFromFloat(amount),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de deudas
// ──────────────────────────────────────────────────────────────────────────────

// Un céntimo de deuda es deuda: 100.01 comprado, 100.00 pagado.
// Con aritmética decimal la resta es exacta y no hace falta épsilon.
func TestDebts_UnCentimoEsDeuda(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{purchase("1", "Иванов", 100.01)},
		[]*entity.Record{payment("2", "Иванов", 100.00)},
	)

	rows := report.Debts(ds, testYear, nil)
	require.Len(t, rows, 1, "0.01 de deuda debe listar al cliente")
	assert.Equal(t, "0.01", rows[0].Debt.String())
}

// Saldo exactamente cero no es deuda.
func TestDebts_SaldoCeroNoAparece(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{purchase("1", "Петров", 500)},
		[]*entity.Record{payment("2", "Петров", 500)},
	)

	rows := report.Debts(ds, testYear, nil)
	assert.Empty(t, rows, "el cliente saldado no es deudor")
}

// Un cliente con sobrepago (saldo a su favor) jamás aparece como deudor.
func TestDebts_SobrepagoNoAparece(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{purchase("1", "Сидоров", 300)},
		[]*entity.Record{payment("2", "Сидоров", 450)},
	)

	rows := report.Debts(ds, testYear, nil)
	assert.Empty(t, rows, "saldo negativo = cliente a favor, no deudor")
}

// Compras y pagos borrados no cuentan para la deuda.
func TestDebts_IgnoraBorrados(t *testing.T) {
	pagoBorrado := payment("3", "Иванов", 400)
	pagoBorrado.IsDeleted = true

	ds := ledgerWith(nil,
		[]*entity.Record{purchase("1", "Иванов", 400)},
		[]*entity.Record{payment("2", "Иванов", 100), pagoBorrado},
	)

	rows := report.Debts(ds, testYear, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "300", rows[0].Debt.String(),
		"el pago borrado de 400 no reduce la deuda")
}

// Varias compras y pagos del mismo cliente se acumulan antes de comparar.
func TestDebts_AcumulaPorCliente(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{
			purchase("1", "Иванов", 1000.50),
			purchase("2", "Иванов", 249.50),
		},
		[]*entity.Record{
			payment("3", "Иванов", 200),
			payment("4", "Иванов", 300),
		},
	)

	rows := report.Debts(ds, testYear, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "1250", rows[0].Total.String())
	assert.Equal(t, "500", rows[0].Paid.String())
	assert.Equal(t, "750", rows[0].Debt.String())
}

// TopDebtors ordena por deuda descendente y corta en n.
func TestTopDebtors_OrdenYLimite(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{
			purchase("1", "Иванов", 100),
			purchase("2", "Петров", 900),
			purchase("3", "Сидоров", 500),
		},
		nil,
	)

	rows := report.TopDebtors(ds, testYear, 2, nil)
	require.Len(t, rows, 2)
	assert.Equal(t, "Петров", rows[0].Client)
	assert.Equal(t, "Сидоров", rows[1].Client)
}

// ──────────────────────────────────────────────────────────────────────────────
// Extracto de cliente
// ──────────────────────────────────────────────────────────────────────────────

// El extracto sí muestra saldo a favor, a diferencia del libro de deudores.
func TestCard_MuestraSaldoAFavor(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{purchase("1", "Иванов", 300)},
		[]*entity.Record{payment("2", "Иванов", 400)},
	)

	card := report.Card(ds, testYear, "Иванов", nil)
	require.Len(t, card.Purchases, 1)
	require.Len(t, card.Payments, 1)
	assert.Equal(t, "-100", card.Debt.String(), "saldo a favor del cliente")
}

// El extracto ordena de más nuevo a más viejo.
func TestCard_OrdenNuevoPrimero(t *testing.T) {
	vieja := purchase("1", "Иванов", 100)
	vieja.Date = "2026-01-05"
	nueva := purchase("2", "Иванов", 200)
	nueva.Date = "2026-04-20"

	ds := ledgerWith(nil, []*entity.Record{vieja, nueva}, nil)

	card := report.Card(ds, testYear, "Иванов", nil)
	require.Len(t, card.Purchases, 2)
	assert.Equal(t, "2026-04-20", card.Purchases[0].Date)
	assert.Equal(t, "2026-01-05", card.Purchases[1].Date)
}
