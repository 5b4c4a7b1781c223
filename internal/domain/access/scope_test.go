package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

func datasetConGrupos() *entity.Dataset {
	return &entity.Dataset{
		Warehouses: []*entity.RefEntity{
			{Name: "Norte-1", Group: "Norte"},
			{Name: "Norte-2", Group: "Norte"},
			{Name: "Sur-1", Group: "Sur"},
			{Name: "Suelto"}, // sin grupo
		},
	}
}

// El admin ve todos los almacenes aunque tenga grupos asignados.
func TestScope_AdminVeTodo(t *testing.T) {
	s := access.ForGroups(datasetConGrupos(), entity.RoleAdmin, []string{"Norte"})
	assert.True(t, s.AllowsWarehouse("Sur-1"))
}

// Una cuenta sin grupos asignados no tiene restricción.
func TestScope_SinGruposVeTodo(t *testing.T) {
	s := access.ForGroups(datasetConGrupos(), entity.RoleWarehouse, nil)
	assert.True(t, s.AllowsWarehouse("Sur-1"))

	// El dato heredado a veces guarda [""], que cuenta como vacío.
	s = access.ForGroups(datasetConGrupos(), entity.RoleWarehouse, []string{""})
	assert.True(t, s.AllowsWarehouse("Sur-1"))
}

// Una cuenta con grupo ve solo los almacenes de su grupo, más los sin grupo.
func TestScope_GrupoRestringe(t *testing.T) {
	s := access.ForGroups(datasetConGrupos(), entity.RoleWarehouse, []string{"Norte"})

	assert.True(t, s.AllowsWarehouse("Norte-1"))
	assert.True(t, s.AllowsWarehouse("Norte-2"))
	assert.False(t, s.AllowsWarehouse("Sur-1"))
	assert.True(t, s.AllowsWarehouse("Suelto"), "el almacén sin grupo es visible para cualquiera")
	assert.True(t, s.AllowsWarehouse("Desconocido"), "un almacén fuera del catálogo se trata como sin grupo")
}

// Los registros sin almacén (pagos) pasan cualquier filtro.
func TestScope_RegistroSinAlmacen(t *testing.T) {
	s := access.ForGroups(datasetConGrupos(), entity.RoleCashier, []string{"Sur"})
	pago := &entity.Record{ID: "1", Amount: entity.NFromInt(100)}
	assert.True(t, s.AllowsRecord(pago))

	salida := &entity.Record{ID: "2", Warehouse: "Norte-1"}
	assert.False(t, s.AllowsRecord(salida))
}

// Un Scope nil se comporta como sin restricciones (rutas internas).
func TestScope_NilPermiteTodo(t *testing.T) {
	var s *access.Scope
	assert.True(t, s.AllowsWarehouse("Norte-1"))
}
