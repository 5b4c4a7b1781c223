package softdelete_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/internal/domain/softdelete"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testClock = time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)

func newManager() *softdelete.Manager {
	m := softdelete.New()
	m.Now = func() time.Time { return testClock }
	return m
}

func datasetConRegistro(id string) *entity.Dataset {
	ds := &entity.Dataset{}
	y := ds.EnsureYear("2026")
	y.Expense = []*entity.Record{
		{ID: entity.RecordID(id), Date: "2026-03-01", Client: "Иванов", Total: entity.NFromInt(500)},
	}
	return ds
}

// ──────────────────────────────────────────────────────────────────────────────
// Registros
// ──────────────────────────────────────────────────────────────────────────────

// Ciclo completo: borrar escribe la tripleta entera, restaurar la limpia
// entera y deja constancia de quién restauró.
func TestManager_BorrarYRestaurar(t *testing.T) {
	m := newManager()
	ds := datasetConRegistro("7")
	r := ds.Year("2026").Expense[0]

	require.NoError(t, m.MarkRecordDeleted(ds, entity.KindExpense, "7", "admin"))
	assert.True(t, r.Deleted())
	assert.Equal(t, testClock.UnixMilli(), r.DeletedAt)
	assert.Equal(t, "admin", r.DeletedBy)
	assert.Equal(t, "admin", ds.LastModifiedBy, "toda mutación sella lastModified")

	require.NoError(t, m.RestoreRecord(ds, entity.KindExpense, "7", "operador"))
	assert.False(t, r.Deleted())
	assert.Zero(t, r.DeletedAt, "la tripleta se limpia completa")
	assert.Empty(t, r.DeletedBy)
	assert.Equal(t, testClock.UnixMilli(), r.RestoredAt)
	assert.Equal(t, "operador", r.RestoredBy)
}

// Borrar dos veces no es error: re-sella la procedencia del borrado.
func TestManager_BorradoIdempotente(t *testing.T) {
	m := newManager()
	ds := datasetConRegistro("7")
	r := ds.Year("2026").Expense[0]

	require.NoError(t, m.MarkRecordDeleted(ds, entity.KindExpense, "7", "admin"))

	m.Now = func() time.Time { return testClock.Add(time.Hour) }
	require.NoError(t, m.MarkRecordDeleted(ds, entity.KindExpense, "7", "otro"))

	assert.True(t, r.Deleted())
	assert.Equal(t, "otro", r.DeletedBy, "el segundo borrado re-sella el actor")
	assert.Equal(t, testClock.Add(time.Hour).UnixMilli(), r.DeletedAt)
}

// Restaurar un registro activo es un no-op exitoso.
func TestManager_RestaurarActivoEsNoOp(t *testing.T) {
	m := newManager()
	ds := datasetConRegistro("7")

	antes := ds.LastModified
	require.NoError(t, m.RestoreRecord(ds, entity.KindExpense, "7", "admin"))
	assert.Equal(t, antes, ds.LastModified, "un no-op no sella lastModified")
}

// Un id inexistente es ErrNotFound, nunca un registro fantasma.
func TestManager_IdInexistente(t *testing.T) {
	m := newManager()
	ds := datasetConRegistro("7")

	assert.ErrorIs(t, m.MarkRecordDeleted(ds, entity.KindExpense, "999", "admin"), domain.ErrNotFound)
	assert.ErrorIs(t, m.RestoreRecord(ds, entity.KindExpense, "999", "admin"), domain.ErrNotFound)
	assert.ErrorIs(t, m.PurgeRecord(ds, entity.KindExpense, "999"), domain.ErrNotFound)
}

// Los ids numéricos y string coinciden tras la normalización canónica.
func TestManager_IdNumericoCoincide(t *testing.T) {
	m := newManager()
	ds := datasetConRegistro("1706345678901")

	require.NoError(t, m.MarkRecordDeleted(ds, entity.KindExpense, "1706345678901.0", "admin"),
		"la forma float del mismo id debe coincidir")
	assert.True(t, ds.Year("2026").Expense[0].Deleted())
}

// La purga quita el registro físicamente; no queda ni en la papelera.
func TestManager_Purga(t *testing.T) {
	m := newManager()
	ds := datasetConRegistro("7")

	require.NoError(t, m.MarkRecordDeleted(ds, entity.KindExpense, "7", "admin"))
	require.NoError(t, m.PurgeRecord(ds, entity.KindExpense, "7"))
	assert.Empty(t, ds.Year("2026").Expense)
}

// Vaciar la papelera purga solo lo borrado y reporta cuántos quitó.
func TestManager_VaciarPapelera(t *testing.T) {
	m := newManager()
	ds := &entity.Dataset{}
	y := ds.EnsureYear("2026")
	y.Income = []*entity.Record{
		{ID: "1", QtyFact: entity.NFromInt(100)},
		{ID: "2", IsDeleted: true},
	}
	y.Expense = []*entity.Record{
		{ID: "3", IsDeleted: true},
		{ID: "4", Total: entity.NFromInt(50)},
	}
	y.Payments = []*entity.Record{
		{ID: "5", IsDeleted: true},
	}

	purgados := m.PurgeAllDeleted(ds, "2026")
	assert.Equal(t, 3, purgados)
	assert.Len(t, y.Income, 1)
	assert.Len(t, y.Expense, 1)
	assert.Empty(t, y.Payments)

	assert.Zero(t, m.PurgeAllDeleted(ds, "1999"), "un año ausente es papelera vacía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_ReferenciaBorrarYRestaurar(t *testing.T) {
	m := newManager()
	ds := &entity.Dataset{
		Clients: []*entity.RefEntity{{Name: "Иванов"}},
	}

	require.NoError(t, m.MarkRefDeleted(ds, "clients", "Иванов", "admin"))
	require.True(t, ds.Clients[0].IsDeleted())
	assert.Equal(t, "admin", ds.Clients[0].Deleted.By)

	require.NoError(t, m.RestoreRef(ds, "clients", "Иванов", "admin"))
	assert.False(t, ds.Clients[0].IsDeleted())
}

func TestManager_ReferenciaInexistente(t *testing.T) {
	m := newManager()
	ds := &entity.Dataset{Clients: []*entity.RefEntity{{Name: "Иванов"}}}

	assert.ErrorIs(t, m.MarkRefDeleted(ds, "clients", "Петров", "admin"), domain.ErrNotFound)
	assert.ErrorIs(t, m.MarkRefDeleted(ds, "nope", "Иванов", "admin"), domain.ErrNotFound,
		"una colección desconocida también es NotFound")
}
