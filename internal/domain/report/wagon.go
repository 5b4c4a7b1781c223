package report

import (
	"sort"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// WagonRow resume las entradas de un producto de una firma en un almacén:
// cada registro de entrada activo cuenta como un vagón.
type WagonRow struct {
	Product    string         `json:"product"`
	Company    string         `json:"company"`
	Warehouse  string         `json:"warehouse"`
	Wagons     int            `json:"wagons"`
	QtyDoc     entity.Numeric `json:"qtyDoc"`
	QtyFact    entity.Numeric `json:"qtyFact"`
	WeightTons entity.Numeric `json:"weightTons"`
}

// WagonReport es el total de vagones de un año con el gran total y la
// diferencia con signo qtyFact − qtyDoc (merma o excedente de descarga).
type WagonReport struct {
	Rows       []WagonRow     `json:"rows"`
	Wagons     int            `json:"wagons"`
	QtyDoc     entity.Numeric `json:"qtyDoc"`
	QtyFact    entity.Numeric `json:"qtyFact"`
	WeightTons entity.Numeric `json:"weightTons"`
	Difference entity.Numeric `json:"difference"`
}

type wagonKey struct {
	product, company, warehouse string
}

// Wagons calcula el resumen de vagones del año.
func Wagons(ds *entity.Dataset, year string, scope *access.Scope) *WagonReport {
	rep := &WagonReport{Rows: []WagonRow{}}
	y := ds.Year(year)
	if y == nil {
		return rep
	}

	acc := make(map[wagonKey]*WagonRow)
	for _, r := range visible(y.Income, scope) {
		k := wagonKey{r.Product, r.Company, r.Warehouse}
		row := acc[k]
		if row == nil {
			row = &WagonRow{Product: k.product, Company: k.company, Warehouse: k.warehouse}
			acc[k] = row
		}
		row.Wagons++
		row.QtyDoc = row.QtyDoc.AddN(r.QtyDoc)
		row.QtyFact = row.QtyFact.AddN(r.QtyFact)
	}

	col := newCollator()
	for _, row := range acc {
		row.WeightTons = Tons(row.QtyFact)
		rep.Rows = append(rep.Rows, *row)
		rep.Wagons += row.Wagons
		rep.QtyDoc = rep.QtyDoc.AddN(row.QtyDoc)
		rep.QtyFact = rep.QtyFact.AddN(row.QtyFact)
	}
	sort.SliceStable(rep.Rows, func(i, j int) bool {
		a, b := rep.Rows[i], rep.Rows[j]
		if a.Product != b.Product {
			return col.CompareString(a.Product, b.Product) < 0
		}
		if a.Company != b.Company {
			return col.CompareString(a.Company, b.Company) < 0
		}
		return col.CompareString(a.Warehouse, b.Warehouse) < 0
	})

	rep.WeightTons = Tons(rep.QtyFact)
	rep.Difference = rep.QtyFact.SubN(rep.QtyDoc)
	return rep
}
