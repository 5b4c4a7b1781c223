package report

import (
	"sort"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// TrashRecord es un registro borrado junto con la colección de la que salió.
type TrashRecord struct {
	Kind   entity.RecordKind `json:"kind"`
	Record *entity.Record    `json:"record"`
}

// TrashRef es una entrada de referencia borrada con su colección de origen.
type TrashRef struct {
	Collection string `json:"collection"`
	Name       string `json:"name"`
	DeletedAt  int64  `json:"deletedAt"`
	DeletedBy  string `json:"deletedBy"`
}

// TrashReport es el contenido de la papelera de un año: todo lo borrado y no
// purgado, registros de más recién borrado a más antiguo, más conteos por
// colección.
type TrashReport struct {
	Records []TrashRecord  `json:"records"`
	Refs    []TrashRef     `json:"refs"`
	Counts  map[string]int `json:"counts"`
}

// Trash lista lo lógicamente borrado. El complemento exacto de las vistas
// activas: nada aparece en ambas.
func Trash(ds *entity.Dataset, year string, scope *access.Scope) *TrashReport {
	rep := &TrashReport{
		Records: []TrashRecord{},
		Refs:    []TrashRef{},
		Counts:  map[string]int{},
	}

	if y := ds.Year(year); y != nil {
		for _, kind := range entity.RecordKinds {
			for _, r := range y.Collection(kind) {
				if r == nil || !r.Deleted() || !scope.AllowsRecord(r) {
					continue
				}
				rep.Records = append(rep.Records, TrashRecord{Kind: kind, Record: r})
				rep.Counts[string(kind)]++
			}
		}
	}
	sort.SliceStable(rep.Records, func(i, j int) bool {
		return rep.Records[i].Record.DeletedAt > rep.Records[j].Record.DeletedAt
	})

	for _, c := range ds.RefCollections() {
		for _, e := range *c.Ref {
			if !e.IsDeleted() {
				continue
			}
			rep.Refs = append(rep.Refs, TrashRef{
				Collection: c.Name,
				Name:       e.Name,
				DeletedAt:  e.Deleted.At,
				DeletedBy:  e.Deleted.By,
			})
			rep.Counts[c.Name]++
		}
	}
	sort.SliceStable(rep.Refs, func(i, j int) bool {
		return rep.Refs[i].DeletedAt > rep.Refs[j].DeletedAt
	})
	return rep
}
