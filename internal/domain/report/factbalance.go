package report

import (
	"sort"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// FactBalanceRow es una fila del balance fáctico: el saldo de stock anotado
// con el grupo al que pertenece el almacén.
type FactBalanceRow struct {
	Group     string         `json:"group"`
	Warehouse string         `json:"warehouse"`
	Company   string         `json:"company"`
	Product   string         `json:"product"`
	Balance   entity.Numeric `json:"balance"`
	Tons      entity.Numeric `json:"tons"`
}

// FactBalanceGroup agrupa filas por grupo de almacenes. Los almacenes sin
// grupo asignado van bajo el grupo vacío, nunca se descartan.
type FactBalanceGroup struct {
	Group     string           `json:"group"`
	Rows      []FactBalanceRow `json:"rows"`
	TotalTons entity.Numeric   `json:"totalTons"`
}

// ProductTotal es el gran total de un producto a través de todos los grupos.
type ProductTotal struct {
	Product string         `json:"product"`
	Balance entity.Numeric `json:"balance"`
	Tons    entity.Numeric `json:"tons"`
}

// FactBalanceReport es el balance fáctico completo de un año.
type FactBalanceReport struct {
	Groups        []FactBalanceGroup `json:"groups"`
	ProductTotals []ProductTotal     `json:"productTotals"`
	TotalTons     entity.Numeric     `json:"totalTons"`
}

// FactBalance calcula el balance de stock agrupado por grupo de almacenes y
// lo acompaña de totales por producto.
func FactBalance(ds *entity.Dataset, year string, scope *access.Scope) *FactBalanceReport {
	rep := &FactBalanceReport{Groups: []FactBalanceGroup{}, ProductTotals: []ProductTotal{}}
	y := ds.Year(year)
	if y == nil {
		return rep
	}

	groupOf := ds.WarehouseGroupMap()
	acc := accumulateStock(y, scope)

	byGroup := make(map[string][]FactBalanceRow)
	perProduct := make(map[string]entity.Numeric)
	for k, a := range acc {
		balance := a.income.SubN(a.expense)
		if balance.IsZero() {
			continue
		}
		g := groupOf[k.warehouse]
		byGroup[g] = append(byGroup[g], FactBalanceRow{
			Group:     g,
			Warehouse: k.warehouse,
			Company:   k.company,
			Product:   k.product,
			Balance:   balance,
			Tons:      Tons(balance),
		})
		perProduct[k.product] = perProduct[k.product].AddN(balance)
	}

	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sortNames(groups)

	col := newCollator()
	for _, g := range groups {
		rows := byGroup[g]
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Warehouse != rows[j].Warehouse {
				return col.CompareString(rows[i].Warehouse, rows[j].Warehouse) < 0
			}
			return col.CompareString(rows[i].Product, rows[j].Product) < 0
		})
		fg := FactBalanceGroup{Group: g, Rows: rows}
		for _, r := range rows {
			fg.TotalTons = fg.TotalTons.AddN(r.Tons)
		}
		rep.Groups = append(rep.Groups, fg)
		rep.TotalTons = rep.TotalTons.AddN(fg.TotalTons)
	}

	products := make([]string, 0, len(perProduct))
	for p := range perProduct {
		products = append(products, p)
	}
	sortNames(products)
	for _, p := range products {
		rep.ProductTotals = append(rep.ProductTotals, ProductTotal{
			Product: p,
			Balance: perProduct[p],
			Tons:    Tons(perProduct[p]),
		})
	}
	return rep
}
