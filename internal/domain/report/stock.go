package report

import (
	"sort"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// StockRow es el saldo de un producto de una firma en un almacén: entradas
// acumuladas por qtyFact, salidas por quantity, saldo = entradas − salidas.
type StockRow struct {
	Warehouse string         `json:"warehouse"`
	Company   string         `json:"company"`
	Product   string         `json:"product"`
	Income    entity.Numeric `json:"income"`
	Expense   entity.Numeric `json:"expense"`
	Balance   entity.Numeric `json:"balance"`
	Tons      entity.Numeric `json:"tons"`
}

// StockGroup agrupa las filas de un almacén con su tonelaje total.
type StockGroup struct {
	Warehouse string         `json:"warehouse"`
	Rows      []StockRow     `json:"rows"`
	TotalTons entity.Numeric `json:"totalTons"`
}

// StockReport es el balance de stock completo de un año.
type StockReport struct {
	Groups    []StockGroup   `json:"groups"`
	TotalTons entity.Numeric `json:"totalTons"`
}

type stockKey struct {
	warehouse, company, product string
}

type stockAcc struct {
	income, expense entity.Numeric
}

// Stock calcula el balance de stock del año. Solo emite saldos distintos de
// cero; un año sin datos produce un reporte vacío, nunca un error.
func Stock(ds *entity.Dataset, year string, scope *access.Scope) *StockReport {
	rep := &StockReport{Groups: []StockGroup{}}
	y := ds.Year(year)
	if y == nil {
		return rep
	}

	acc := accumulateStock(y, scope)

	byWarehouse := make(map[string][]StockRow)
	for k, a := range acc {
		balance := a.income.SubN(a.expense)
		if balance.IsZero() {
			continue
		}
		byWarehouse[k.warehouse] = append(byWarehouse[k.warehouse], StockRow{
			Warehouse: k.warehouse,
			Company:   k.company,
			Product:   k.product,
			Income:    a.income,
			Expense:   a.expense,
			Balance:   balance,
			Tons:      Tons(balance),
		})
	}

	warehouses := make([]string, 0, len(byWarehouse))
	for w := range byWarehouse {
		warehouses = append(warehouses, w)
	}
	sortNames(warehouses)

	col := newCollator()
	for _, w := range warehouses {
		rows := byWarehouse[w]
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Company != rows[j].Company {
				return col.CompareString(rows[i].Company, rows[j].Company) < 0
			}
			return col.CompareString(rows[i].Product, rows[j].Product) < 0
		})
		g := StockGroup{Warehouse: w, Rows: rows}
		for _, r := range rows {
			g.TotalTons = g.TotalTons.AddN(r.Tons)
		}
		rep.Groups = append(rep.Groups, g)
		rep.TotalTons = rep.TotalTons.AddN(g.TotalTons)
	}
	return rep
}

// accumulateStock recorre entradas y salidas activas una sola vez.
func accumulateStock(y *entity.YearData, scope *access.Scope) map[stockKey]stockAcc {
	acc := make(map[stockKey]stockAcc)
	for _, r := range visible(y.Income, scope) {
		k := stockKey{r.Warehouse, r.Company, r.Product}
		a := acc[k]
		a.income = a.income.AddN(r.QtyFact)
		acc[k] = a
	}
	for _, r := range visible(y.Expense, scope) {
		k := stockKey{r.Warehouse, r.Company, r.Product}
		a := acc[k]
		a.expense = a.expense.AddN(r.Quantity)
		acc[k] = a
	}
	return acc
}
