package report

import (
	"sort"
	"time"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// Notification señala a un cliente que compró exactamente en la fecha
// objetivo y sigue debiendo: cruce de señal de actividad con señal de deuda.
type Notification struct {
	Client      string           `json:"client"`
	PurchasedOn string           `json:"purchasedOn"`
	Purchases   []*entity.Record `json:"purchases"`
	Debt        entity.Numeric   `json:"debt"`
}

// DebtorsWithPurchaseOn busca clientes con salidas activas cuya fecha es
// exactamente date (no un rango) y deuda actual positiva. Ordenado de mayor
// a menor deuda.
func DebtorsWithPurchaseOn(ds *entity.Dataset, year, date string, scope *access.Scope) []Notification {
	out := []Notification{}
	y := ds.Year(year)
	if y == nil {
		return out
	}

	purchases := make(map[string][]*entity.Record)
	for _, r := range visible(y.Expense, scope) {
		if r.Date == date && r.Client != "" {
			purchases[r.Client] = append(purchases[r.Client], r)
		}
	}
	if len(purchases) == 0 {
		return out
	}

	debts := make(map[string]DebtRow)
	for _, row := range debtRows(y, scope) {
		debts[row.Client] = row
	}

	for client, recs := range purchases {
		row, ok := debts[client]
		if !ok {
			continue
		}
		newestFirst(recs)
		out = append(out, Notification{
			Client:      client,
			PurchasedOn: date,
			Purchases:   recs,
			Debt:        row.Debt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Debt.GreaterThan(out[j].Debt.Decimal)
	})
	return out
}

// DateDaysAgo devuelve la fecha YYYY-MM-DD de hace days días respecto a now.
// Es la fecha objetivo típica del escaneo de notificaciones.
func DateDaysAgo(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format("2006-01-02")
}
