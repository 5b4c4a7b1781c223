package report

import (
	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// ClientCard es el extracto de un cliente en el año: sus compras (salidas
// del almacén a su nombre) y sus pagos, con totales y saldo. A diferencia de
// las vistas de deudores, el saldo puede ser cero o a favor del cliente.
type ClientCard struct {
	Client         string           `json:"client"`
	Purchases      []*entity.Record `json:"purchases"`
	Payments       []*entity.Record `json:"payments"`
	PurchasesTotal entity.Numeric   `json:"purchasesTotal"`
	PaymentsTotal  entity.Numeric   `json:"paymentsTotal"`
	Debt           entity.Numeric   `json:"debt"`
}

// Card arma el extracto de client para el año, de más nuevo a más viejo.
func Card(ds *entity.Dataset, year, client string, scope *access.Scope) *ClientCard {
	card := &ClientCard{
		Client:    client,
		Purchases: []*entity.Record{},
		Payments:  []*entity.Record{},
	}
	y := ds.Year(year)
	if y == nil {
		return card
	}
	for _, r := range visible(y.Expense, scope) {
		if r.Client == client {
			card.Purchases = append(card.Purchases, r)
			card.PurchasesTotal = card.PurchasesTotal.AddN(r.Total)
		}
	}
	for _, r := range visible(y.Payments, scope) {
		if r.Client == client {
			card.Payments = append(card.Payments, r)
			card.PaymentsTotal = card.PaymentsTotal.AddN(r.Amount)
		}
	}
	newestFirst(card.Purchases)
	newestFirst(card.Payments)
	card.Debt = entity.N(card.PurchasesTotal.SubN(card.PaymentsTotal).Round(2))
	return card
}
