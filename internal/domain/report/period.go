package report

import (
	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// PeriodReport es una lista de registros de un tipo filtrada por rango de
// fechas inclusivo, de más nuevo a más viejo, con la suma del campo
// monetario que aplica al tipo (total para salidas, amount para pagos).
type PeriodReport struct {
	Kind    entity.RecordKind `json:"kind"`
	From    string            `json:"from"`
	To      string            `json:"to"`
	Records []*entity.Record  `json:"records"`
	Total   entity.Numeric    `json:"total"`
	// Clients solo se llena para pagos: lo cobrado por cliente en el rango.
	Clients []ClientMoney `json:"clients,omitempty"`
}

// ClientMoney es lo acumulado para un cliente dentro de un rango.
type ClientMoney struct {
	Client string         `json:"client"`
	Amount entity.Numeric `json:"amount"`
}

// Period filtra los registros activos de kind cuya fecha cae en [from, to].
// Las fechas son YYYY-MM-DD, así que el rango se compara como strings; un
// extremo vacío deja ese lado del rango abierto.
func Period(ds *entity.Dataset, year string, kind entity.RecordKind, from, to string, scope *access.Scope) *PeriodReport {
	rep := &PeriodReport{Kind: kind, From: from, To: to, Records: []*entity.Record{}}
	y := ds.Year(year)
	if y == nil {
		return rep
	}
	perClient := make(map[string]entity.Numeric)
	for _, r := range visible(y.Collection(kind), scope) {
		if r.Date < from || (to != "" && r.Date > to) {
			continue
		}
		rep.Records = append(rep.Records, r)
		rep.Total = rep.Total.AddN(moneyOf(r, kind))
		if kind == entity.KindPayments && r.Client != "" {
			perClient[r.Client] = perClient[r.Client].AddN(r.Amount)
		}
	}
	newestFirst(rep.Records)
	if len(perClient) > 0 {
		names := make([]string, 0, len(perClient))
		for n := range perClient {
			names = append(names, n)
		}
		sortNames(names)
		for _, n := range names {
			rep.Clients = append(rep.Clients, ClientMoney{Client: n, Amount: perClient[n]})
		}
	}
	return rep
}

// DailyReport reúne la actividad de una fecha exacta: entradas, salidas y
// pagos con sus totales.
type DailyReport struct {
	Date          string           `json:"date"`
	Income        []*entity.Record `json:"income"`
	Expense       []*entity.Record `json:"expense"`
	Payments      []*entity.Record `json:"payments"`
	IncomeQtyFact entity.Numeric   `json:"incomeQtyFact"`
	ExpenseTotal  entity.Numeric   `json:"expenseTotal"`
	PaymentsTotal entity.Numeric   `json:"paymentsTotal"`
}

// Daily produce el reporte de un día concreto.
func Daily(ds *entity.Dataset, year, date string, scope *access.Scope) *DailyReport {
	rep := &DailyReport{
		Date:     date,
		Income:   []*entity.Record{},
		Expense:  []*entity.Record{},
		Payments: []*entity.Record{},
	}
	y := ds.Year(year)
	if y == nil {
		return rep
	}
	for _, r := range visible(y.Income, scope) {
		if r.Date == date {
			rep.Income = append(rep.Income, r)
			rep.IncomeQtyFact = rep.IncomeQtyFact.AddN(r.QtyFact)
		}
	}
	for _, r := range visible(y.Expense, scope) {
		if r.Date == date {
			rep.Expense = append(rep.Expense, r)
			rep.ExpenseTotal = rep.ExpenseTotal.AddN(r.Total)
		}
	}
	for _, r := range visible(y.Payments, scope) {
		if r.Date == date {
			rep.Payments = append(rep.Payments, r)
			rep.PaymentsTotal = rep.PaymentsTotal.AddN(r.Amount)
		}
	}
	newestFirst(rep.Income)
	newestFirst(rep.Expense)
	newestFirst(rep.Payments)
	return rep
}

// ProductTons es el despacho de un producto en toneladas.
type ProductTons struct {
	Product  string         `json:"product"`
	Quantity entity.Numeric `json:"quantity"`
	Tons     entity.Numeric `json:"tons"`
}

// TodayExpense resume las salidas de una fecha por producto, en toneladas.
func TodayExpense(ds *entity.Dataset, year, date string, scope *access.Scope) []ProductTons {
	out := []ProductTons{}
	y := ds.Year(year)
	if y == nil {
		return out
	}
	perProduct := make(map[string]entity.Numeric)
	for _, r := range visible(y.Expense, scope) {
		if r.Date == date {
			perProduct[r.Product] = perProduct[r.Product].AddN(r.Quantity)
		}
	}
	products := make([]string, 0, len(perProduct))
	for p := range perProduct {
		products = append(products, p)
	}
	sortNames(products)
	for _, p := range products {
		out = append(out, ProductTons{Product: p, Quantity: perProduct[p], Tons: Tons(perProduct[p])})
	}
	return out
}

// moneyOf devuelve el campo monetario que aplica al tipo de registro.
func moneyOf(r *entity.Record, kind entity.RecordKind) entity.Numeric {
	if kind == entity.KindPayments {
		return r.Amount
	}
	return r.Total
}
