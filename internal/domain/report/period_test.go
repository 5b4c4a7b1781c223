package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/report"
)

func expenseOn(id, date, client string, total float64) *entity.Record {
	r := purchase(id, client, total)
	r.Date = date
	return r
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes por período y por día
// ──────────────────────────────────────────────────────────────────────────────

// El rango es inclusivo en ambos extremos.
func TestPeriod_RangoInclusivo(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{
			expenseOn("1", "2026-02-01", "Иванов", 100),
			expenseOn("2", "2026-02-10", "Иванов", 200),
			expenseOn("3", "2026-02-28", "Иванов", 300),
			expenseOn("4", "2026-03-01", "Иванов", 999),
		},
		nil,
	)

	rep := report.Period(ds, testYear, entity.KindExpense, "2026-02-01", "2026-02-28", nil)
	require.Len(t, rep.Records, 3, "los extremos del rango entran")
	assert.Equal(t, "600", rep.Total.String())
}

// Los registros salen de más nuevo a más viejo.
func TestPeriod_OrdenNuevoPrimero(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{
			expenseOn("1", "2026-02-01", "Иванов", 100),
			expenseOn("2", "2026-02-20", "Иванов", 200),
		},
		nil,
	)

	rep := report.Period(ds, testYear, entity.KindExpense, "2026-01-01", "2026-12-31", nil)
	require.Len(t, rep.Records, 2)
	assert.Equal(t, "2026-02-20", rep.Records[0].Date)
}

// Para pagos el total suma amount, no total.
func TestPeriod_PagosSumanAmount(t *testing.T) {
	ds := ledgerWith(nil, nil,
		[]*entity.Record{payment("1", "Иванов", 150.25), payment("2", "Петров", 49.75)},
	)

	rep := report.Period(ds, testYear, entity.KindPayments, "2026-01-01", "2026-12-31", nil)
	assert.Equal(t, "200", rep.Total.String())
}

// Un extremo vacío deja el rango abierto por ese lado.
func TestPeriod_ExtremosAbiertos(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{
			expenseOn("1", "2026-01-05", "Иванов", 100),
			expenseOn("2", "2026-06-15", "Иванов", 200),
			expenseOn("3", "2026-12-20", "Иванов", 400),
		},
		nil,
	)

	desde := report.Period(ds, testYear, entity.KindExpense, "2026-06-01", "", nil)
	assert.Equal(t, "600", desde.Total.String(), "sin cota superior entra todo lo posterior")

	hasta := report.Period(ds, testYear, entity.KindExpense, "", "2026-06-30", nil)
	assert.Equal(t, "300", hasta.Total.String(), "sin cota inferior entra todo lo anterior")
}

// Los pagos del período además se agrupan por cliente.
func TestPeriod_PagosAgrupadosPorCliente(t *testing.T) {
	ds := ledgerWith(nil, nil,
		[]*entity.Record{
			payment("1", "Иванов", 100),
			payment("2", "Петров", 50),
			payment("3", "Иванов", 25),
		},
	)

	rep := report.Period(ds, testYear, entity.KindPayments, "2026-01-01", "2026-12-31", nil)
	require.Len(t, rep.Clients, 2)
	assert.Equal(t, "Иванов", rep.Clients[0].Client)
	assert.Equal(t, "125", rep.Clients[0].Amount.String())
	assert.Equal(t, "Петров", rep.Clients[1].Client)
	assert.Equal(t, "50", rep.Clients[1].Amount.String())
}

// El reporte diario toma la fecha exacta, no un rango.
func TestDaily_FechaExacta(t *testing.T) {
	ds := ledgerWith(
		[]*entity.Record{incomeRec("1", "Almacén 1", "Firma A", "Пшеница", 500)},
		[]*entity.Record{
			expenseOn("2", "2026-03-01", "Иванов", 100),
			expenseOn("3", "2026-03-02", "Иванов", 900),
		},
		[]*entity.Record{payment("4", "Иванов", 50)},
	)
	// incomeRec y payment usan fechas fijas: 2026-03-01 y 2026-02-15

	rep := report.Daily(ds, testYear, "2026-03-01", nil)
	assert.Len(t, rep.Income, 1)
	assert.Len(t, rep.Expense, 1)
	assert.Empty(t, rep.Payments, "el pago es de otra fecha")
	assert.Equal(t, "100", rep.ExpenseTotal.String())
	assert.Equal(t, "500", rep.IncomeQtyFact.String())
}

// Salidas del día agrupadas por producto y convertidas a toneladas.
func TestTodayExpense_PorProductoEnToneladas(t *testing.T) {
	r1 := expenseRec("1", "Almacén 1", "Firma A", "Пшеница", 400)
	r1.Date = "2026-03-07"
	r2 := expenseRec("2", "Almacén 1", "Firma A", "Пшеница", 200)
	r2.Date = "2026-03-07"
	r3 := expenseRec("3", "Almacén 1", "Firma A", "Ячмень", 100)
	r3.Date = "2026-03-07"

	ds := ledgerWith(nil, []*entity.Record{r1, r2, r3}, nil)

	rows := report.TodayExpense(ds, testYear, "2026-03-07", nil)
	require.Len(t, rows, 2)

	byProduct := map[string]string{}
	for _, r := range rows {
		byProduct[r.Product] = r.Tons.String()
	}
	assert.Equal(t, "30", byProduct["Пшеница"], "600 unidades = 30 t")
	assert.Equal(t, "5", byProduct["Ячмень"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Escaneo de notificaciones
// ──────────────────────────────────────────────────────────────────────────────

// Solo clientes con compra EXACTAMENTE en la fecha objetivo y deuda positiva.
func TestNotifications_CompraExactaYDeuda(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{
			expenseOn("1", "2026-03-01", "Иванов", 500),  // compra en la fecha, debe
			expenseOn("2", "2026-03-01", "Петров", 300),  // compra en la fecha, pero saldado
			expenseOn("3", "2026-02-25", "Сидоров", 800), // debe, pero compró otro día
		},
		[]*entity.Record{payment("4", "Петров", 300)},
	)

	out := report.DebtorsWithPurchaseOn(ds, testYear, "2026-03-01", nil)
	require.Len(t, out, 1, "solo Иванов cruza compra exacta con deuda positiva")
	assert.Equal(t, "Иванов", out[0].Client)
	assert.Equal(t, "500", out[0].Debt.String())
}

// La salida va ordenada de mayor a menor deuda.
func TestNotifications_OrdenPorDeuda(t *testing.T) {
	ds := ledgerWith(nil,
		[]*entity.Record{
			expenseOn("1", "2026-03-01", "Иванов", 200),
			expenseOn("2", "2026-03-01", "Петров", 700),
		},
		nil,
	)

	out := report.DebtorsWithPurchaseOn(ds, testYear, "2026-03-01", nil)
	require.Len(t, out, 2)
	assert.Equal(t, "Петров", out[0].Client)
}

func TestDateDaysAgo(t *testing.T) {
	now := time.Date(2026, 3, 8, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01", report.DateDaysAgo(now, 7))
}
