// Package softdelete implementa el borrado lógico del libro: marcar,
// restaurar y purgar registros y entradas de referencia. El flag que escribe
// este paquete es la única señal que leen el motor de agregación y el
// reconciliador de snapshots.
package softdelete

import (
	"time"

	"github.com/jhoicas/Avesta-api/internal/domain"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// Manager muta datasets en memoria. No persiste: el caller decide cuándo
// enviar el dataset resultante al store.
type Manager struct {
	Now func() time.Time // inyectable para tests; nil = time.Now
}

// New construye el manager con reloj real.
func New() *Manager { return &Manager{} }

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// MarkRecordDeleted marca como borrado el registro con ese id en cualquiera
// de los años del dataset. Idempotente: sobre un registro ya borrado
// re-sella DeletedAt/DeletedBy y sigue reportando éxito. Devuelve
// domain.ErrNotFound solo cuando el id no coincide con ningún registro.
func (m *Manager) MarkRecordDeleted(ds *entity.Dataset, kind entity.RecordKind, id string, actor string) error {
	target := entity.NormalizeID(id)
	found := false
	for _, year := range ds.Years {
		if r := year.FindRecord(kind, target); r != nil {
			r.MarkDeleted(actor, m.now())
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	ds.Touch(actor, m.now())
	return nil
}

// RestoreRecord limpia la tripleta de borrado si el registro está borrado.
// Es un no-op exitoso sobre un registro activo; devuelve domain.ErrNotFound
// cuando el id no existe.
func (m *Manager) RestoreRecord(ds *entity.Dataset, kind entity.RecordKind, id string, actor string) error {
	target := entity.NormalizeID(id)
	found := false
	restored := false
	for _, year := range ds.Years {
		if r := year.FindRecord(kind, target); r != nil {
			found = true
			if r.Deleted() {
				r.ClearDeleted(actor, m.now())
				restored = true
			}
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	if restored {
		ds.Touch(actor, m.now())
	}
	return nil
}

// PurgeRecord elimina físicamente el registro de su secuencia. Irreversible;
// solo debe invocarse desde la ruta explícita de "borrar para siempre".
func (m *Manager) PurgeRecord(ds *entity.Dataset, kind entity.RecordKind, id string) error {
	target := entity.NormalizeID(id)
	found := false
	for _, year := range ds.Years {
		coll := year.Collection(kind)
		if coll == nil {
			continue
		}
		kept := coll[:0]
		for _, r := range coll {
			if r != nil && r.ID == target {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		year.SetCollection(kind, kept)
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// PurgeAllDeleted vacía la papelera de un año: elimina físicamente todo
// registro borrado de las tres secuencias de transacciones y devuelve
// cuántos quitó. Un año ausente cuenta como papelera vacía.
func (m *Manager) PurgeAllDeleted(ds *entity.Dataset, year string) int {
	y := ds.Year(year)
	if y == nil {
		return 0
	}
	purged := 0
	for _, kind := range []entity.RecordKind{entity.KindIncome, entity.KindExpense, entity.KindPayments} {
		coll := y.Collection(kind)
		kept := coll[:0]
		for _, r := range coll {
			if r.Deleted() {
				purged++
				continue
			}
			kept = append(kept, r)
		}
		y.SetCollection(kind, kept)
	}
	return purged
}

// MarkRefDeleted marca como borrada la entrada de referencia con ese nombre.
// Idempotente como MarkRecordDeleted.
func (m *Manager) MarkRefDeleted(ds *entity.Dataset, collection string, name string, actor string) error {
	coll := ds.RefCollectionByName(collection)
	if coll == nil {
		return domain.ErrNotFound
	}
	e := entity.FindRef(*coll, name)
	if e == nil {
		return domain.ErrNotFound
	}
	e.MarkDeleted(actor, m.now())
	ds.Touch(actor, m.now())
	return nil
}

// RestoreRef limpia el borrado de una entrada de referencia. No-op exitoso
// si ya estaba activa; ErrNotFound si el nombre no existe.
func (m *Manager) RestoreRef(ds *entity.Dataset, collection string, name string, actor string) error {
	coll := ds.RefCollectionByName(collection)
	if coll == nil {
		return domain.ErrNotFound
	}
	e := entity.FindRef(*coll, name)
	if e == nil {
		return domain.ErrNotFound
	}
	if e.IsDeleted() {
		e.ClearDeleted()
		ds.Touch(actor, m.now())
	}
	return nil
}
