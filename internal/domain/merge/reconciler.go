// Package merge reconcilia dos snapshots divergentes del libro (la copia
// "cloud" autoritativa y una copia "local" posiblemente desfasada о
// adelantada) en un único dataset consistente.
//
// El algoritmo es una heurística optimista, no un CRDT: el borrado gana
// siempre sobre la presencia, las altas se suman y los metadatos volátiles
// los aporta el snapshot con lastModified más nuevo. El orden de las fases
// importa: las bajas se propagan antes que las altas para que un re-añadido
// ciego no resucite registros borrados.
//
// Hueco conocido: si el mismo registro fue EDITADO (no borrado) en ambos
// lados con valores distintos, gana la copia cloud porque es la base del
// merge. Resolver ese caso a nivel de campo exige una decisión de producto
// que el sistema original nunca tomó.
package merge

import (
	"time"

	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// Reconcile combina dos snapshots. La ausencia de cualquiera de los dos no
// es un error: degrada a passthrough del otro (nil/nil → nil). Colecciones o
// años ausentes en un lado se tratan como secuencias vacías, nunca fallan.
//
// El resultado siempre sale sellado con lastModified = now y
// lastModifiedBy = actor.
func Reconcile(cloud, local *entity.Dataset, actor string, now time.Time) *entity.Dataset {
	if cloud == nil && local == nil {
		return nil
	}
	if cloud == nil {
		return stamp(local.Clone(), actor, now)
	}
	if local == nil {
		return stamp(cloud.Clone(), actor, now)
	}

	base := cloud.Clone()

	propagateDeletions(base, local)
	propagateAdditions(base, cloud, local)
	reconcileMetadata(base, local)

	return stamp(base, actor, now)
}

func stamp(ds *entity.Dataset, actor string, now time.Time) *entity.Dataset {
	if ds != nil {
		ds.LastSync = now.UnixMilli()
		ds.LastSyncBy = actor
		ds.Touch(actor, now)
	}
	return ds
}

// propagateDeletions aplica a la base todo borrado presente en local: el
// borrado es un trinquete de un solo sentido: borrado en cualquier copia,
// borrado en el resultado.
func propagateDeletions(base, local *entity.Dataset) {
	// Colecciones de referencia, por nombre.
	for _, lc := range local.RefCollections() {
		bc := base.RefCollectionByName(lc.Name)
		if bc == nil {
			continue
		}
		for _, le := range *lc.Ref {
			if !le.IsDeleted() {
				continue
			}
			if be := entity.FindRef(*bc, le.Name); be != nil && !be.IsDeleted() {
				be.Deleted = &entity.Deletion{At: le.Deleted.At, By: le.Deleted.By}
			}
		}
	}

	// Cuentas de usuario, por username.
	for _, lu := range local.Users {
		if lu == nil || !lu.IsDeleted {
			continue
		}
		for _, bu := range base.Users {
			if bu != nil && bu.Username == lu.Username && !bu.IsDeleted {
				bu.IsDeleted = true
				bu.DeletedAt = lu.DeletedAt
				bu.DeletedBy = lu.DeletedBy
			}
		}
	}

	// Secuencias anuales, por id.
	for label, ly := range local.Years {
		by := base.Year(label)
		if by == nil {
			continue
		}
		for _, kind := range entity.RecordKinds {
			for _, lr := range ly.Collection(kind) {
				if !lr.Deleted() {
					continue
				}
				if br := by.FindRecord(kind, lr.ID); br != nil && !br.Deleted() {
					br.IsDeleted = true
					br.DeletedAt = lr.DeletedAt
					br.DeletedBy = lr.DeletedBy
				}
			}
		}
	}
}

// propagateAdditions añade a la base lo que existe en local pero ni en cloud
// ni en la base: entradas de referencia por nombre, registros por id. Lo
// borrado-y-nuevo se descarta en vez de resucitarse.
func propagateAdditions(base, cloud, local *entity.Dataset) {
	for _, lc := range local.RefCollections() {
		bc := base.RefCollectionByName(lc.Name)
		cc := cloud.RefCollectionByName(lc.Name)
		if bc == nil {
			continue
		}
		for _, le := range *lc.Ref {
			if le == nil || le.IsDeleted() || le.Name == "" {
				continue
			}
			if cc != nil && entity.FindRef(*cc, le.Name) != nil {
				continue
			}
			if entity.FindRef(*bc, le.Name) != nil {
				continue
			}
			add := *le
			*bc = append(*bc, &add)
		}
	}

	for label, ly := range local.Years {
		by := base.EnsureYear(label)
		cy := cloud.Year(label)
		for _, kind := range entity.RecordKinds {
			for _, lr := range ly.Collection(kind) {
				if lr == nil || lr.Deleted() || lr.ID == "" {
					continue
				}
				if cy.FindRecord(kind, lr.ID) != nil {
					continue
				}
				if by.FindRecord(kind, lr.ID) != nil {
					continue
				}
				add := *lr
				by.SetCollection(kind, append(by.Collection(kind), &add))
			}
		}
	}
}

// reconcileMetadata trae de local los metadatos volátiles cuando local es
// más nuevo que la base según lastModified.
func reconcileMetadata(base, local *entity.Dataset) {
	if local.LastModified <= base.LastModified {
		return
	}
	base.CurrentYear = local.CurrentYear
	base.UserLastLogin = local.UserLastLogin
	base.ProductPrices = local.ProductPrices
}
