package report

import (
	"sort"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// DebtRow es la posición deudora de un cliente: compras acumuladas por
// total, pagos acumulados por amount, deuda = compras − pagos redondeada a
// céntimos.
type DebtRow struct {
	Client string         `json:"client"`
	Total  entity.Numeric `json:"total"`
	Paid   entity.Numeric `json:"paid"`
	Debt   entity.Numeric `json:"debt"`
}

// Debts devuelve los deudores del año: solo clientes con deuda estrictamente
// positiva tras redondear. Saldo cero o a favor del cliente (sobrepago)
// jamás aparece en una vista de deudores. Ordenado por nombre de cliente.
func Debts(ds *entity.Dataset, year string, scope *access.Scope) []DebtRow {
	rows := debtRows(ds.Year(year), scope)
	col := newCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		return col.CompareString(rows[i].Client, rows[j].Client) < 0
	})
	return rows
}

// TopDebtors devuelve los n clientes con mayor deuda, de mayor a menor.
// n ≤ 0 devuelve todos.
func TopDebtors(ds *entity.Dataset, year string, n int, scope *access.Scope) []DebtRow {
	rows := debtRows(ds.Year(year), scope)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Debt.GreaterThan(rows[j].Debt.Decimal)
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// DebtOf calcula la deuda redondeada de un cliente concreto, positiva o no.
// La usa el extracto de cliente, que a diferencia de las vistas de deudores
// sí muestra saldos a favor.
func DebtOf(y *entity.YearData, client string, scope *access.Scope) DebtRow {
	row := DebtRow{Client: client}
	if y == nil {
		return row
	}
	for _, r := range visible(y.Expense, scope) {
		if r.Client == client {
			row.Total = row.Total.AddN(r.Total)
		}
	}
	for _, r := range visible(y.Payments, scope) {
		if r.Client == client {
			row.Paid = row.Paid.AddN(r.Amount)
		}
	}
	row.Debt = entity.N(row.Total.SubN(row.Paid).Round(2))
	return row
}

// debtRows acumula el libro de deudas y filtra a deudores positivos.
//
// Con aritmética decimal la resta es exacta (100.01 − 100.00 = 0.01), así
// que "positivo tras Round(2)" distingue un céntimo real de deuda sin
// necesidad de épsilon.
func debtRows(y *entity.YearData, scope *access.Scope) []DebtRow {
	rows := []DebtRow{}
	if y == nil {
		return rows
	}

	totals := make(map[string]entity.Numeric)
	paid := make(map[string]entity.Numeric)
	for _, r := range visible(y.Expense, scope) {
		if r.Client == "" {
			continue
		}
		totals[r.Client] = totals[r.Client].AddN(r.Total)
	}
	for _, r := range visible(y.Payments, scope) {
		if r.Client == "" {
			continue
		}
		paid[r.Client] = paid[r.Client].AddN(r.Amount)
	}

	for client, total := range totals {
		debt := entity.N(total.SubN(paid[client]).Round(2))
		if !debt.IsPositive() {
			continue
		}
		rows = append(rows, DebtRow{
			Client: client,
			Total:  total,
			Paid:   paid[client],
			Debt:   debt,
		})
	}
	return rows
}
