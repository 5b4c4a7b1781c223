package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/report"
)

func wagon(id string, qtyDoc, qtyFact int64) *entity.Record {
	return &entity.Record{
		ID: entity.RecordID(id), Date: "2026-03-05",
		Warehouse: "Almacén 1", Company: "Firma A", Product: "Пшеница",
		Wagon:  "W-" + id,
		QtyDoc: entity.NFromInt(qtyDoc), QtyFact: entity.NFromInt(qtyFact),
	}
}

// Tres vagones activos de 980, 1200 y 850; uno borrado de 500 que no cuenta.
// Total: 3 vagones, 3030 unidades, 151.5 toneladas.
func TestWagons_TotalesConBorrado(t *testing.T) {
	borrado := wagon("4", 500, 500)
	borrado.IsDeleted = true

	ds := ledgerWith(
		[]*entity.Record{wagon("1", 1000, 980), wagon("2", 1200, 1200), wagon("3", 800, 850), borrado},
		nil, nil,
	)

	rep := report.Wagons(ds, testYear, nil)
	require.Len(t, rep.Rows, 1, "misma clave producto-firma-almacén")

	assert.Equal(t, 3, rep.Wagons, "el vagón borrado no cuenta")
	assert.Equal(t, "3000", rep.QtyDoc.String())
	assert.Equal(t, "3030", rep.QtyFact.String())
	assert.Equal(t, "151.5", rep.WeightTons.String())
	assert.Equal(t, "30", rep.Difference.String(), "diferencia con signo qtyFact − qtyDoc")
}

// La diferencia conserva el signo cuando se descargó menos de lo documentado.
func TestWagons_DiferenciaNegativa(t *testing.T) {
	ds := ledgerWith([]*entity.Record{wagon("1", 1000, 940)}, nil, nil)

	rep := report.Wagons(ds, testYear, nil)
	assert.Equal(t, "-60", rep.Difference.String())
}

// Claves distintas generan filas distintas y el gran total las cruza todas.
func TestWagons_VariasClaves(t *testing.T) {
	otro := wagon("2", 500, 500)
	otro.Product = "Ячмень"

	ds := ledgerWith([]*entity.Record{wagon("1", 1000, 1000), otro}, nil, nil)

	rep := report.Wagons(ds, testYear, nil)
	require.Len(t, rep.Rows, 2)
	assert.Equal(t, 2, rep.Wagons)
	assert.Equal(t, "1500", rep.QtyFact.String())
	assert.Equal(t, "75", rep.WeightTons.String())
}
