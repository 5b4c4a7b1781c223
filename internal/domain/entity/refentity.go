package entity

import (
	"encoding/json"
	"time"
)

// Deletion agrupa la procedencia de un borrado lógico.
type Deletion struct {
	At int64  // epoch ms
	By string // actor que borró
}

// RefEntity es una entrada de una colección de referencia (cliente, producto,
// firma, almacén, grupo de almacenes o coalición).
//
// En el documento heredado una entrada podía ser un string pelado o un objeto
// {name, ...}, y el borrado "promovía" el string a objeto sobre la marcha.
// Aquí la forma es una sola desde el inicio: {Name, Group, Deleted}; la forma
// string del wire se absorbe en UnmarshalJSON y la serialización emite
// siempre el objeto, con lo que la promoción bajo demanda desaparece.
type RefEntity struct {
	Name    string
	Group   string // solo almacenes: grupo al que pertenece
	Deleted *Deletion
}

// IsDeleted informa si la entrada está lógicamente borrada.
func (e *RefEntity) IsDeleted() bool { return e != nil && e.Deleted != nil }

// MarkDeleted escribe la tripleta de borrado. Idempotente: re-sella procedencia.
func (e *RefEntity) MarkDeleted(actor string, at time.Time) {
	e.Deleted = &Deletion{At: at.UnixMilli(), By: actor}
}

// ClearDeleted limpia la tripleta completa.
func (e *RefEntity) ClearDeleted() { e.Deleted = nil }

// refEntityWire es la forma objeto del documento JSON compartido.
type refEntityWire struct {
	Name      string `json:"name"`
	Group     string `json:"group,omitempty"`
	IsDeleted bool   `json:"isDeleted,omitempty"`
	DeletedAt int64  `json:"deletedAt,omitempty"`
	DeletedBy string `json:"deletedBy,omitempty"`
}

// UnmarshalJSON acepta tanto el string pelado heredado como la forma objeto.
func (e *RefEntity) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*e = RefEntity{Name: s}
		return nil
	}
	var w refEntityWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*e = RefEntity{Name: w.Name, Group: w.Group}
	if w.IsDeleted {
		e.Deleted = &Deletion{At: w.DeletedAt, By: w.DeletedBy}
	}
	return nil
}

// MarshalJSON emite siempre la forma objeto.
func (e RefEntity) MarshalJSON() ([]byte, error) {
	w := refEntityWire{Name: e.Name, Group: e.Group}
	if e.Deleted != nil {
		w.IsDeleted = true
		w.DeletedAt = e.Deleted.At
		w.DeletedBy = e.Deleted.By
	}
	return json.Marshal(w)
}

// FindRef localiza una entrada por nombre en una colección de referencia.
func FindRef(coll []*RefEntity, name string) *RefEntity {
	for _, e := range coll {
		if e != nil && e.Name == name {
			return e
		}
	}
	return nil
}
