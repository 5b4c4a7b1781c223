// Package entity define el modelo del libro compartido: el Dataset raíz con
// sus particiones anuales, los registros de transacciones y las colecciones
// de referencia. Todas las formas JSON son tolerantes con los tipos mixtos
// que dejó la aplicación web histórica (ids numéricos, referencias string,
// números malformados).
package entity

import (
	"encoding/json"
	"time"
)

// YearData es una partición anual: las cuatro secuencias de transacciones.
// El orden de inserción se conserva pero solo importa para presentación.
type YearData struct {
	Income   []*Record `json:"income"`
	Expense  []*Record `json:"expense"`
	Payments []*Record `json:"payments"`
	Partners []*Record `json:"partners"`
}

// Collection devuelve la secuencia de un tipo. Segura sobre receptor nil.
func (y *YearData) Collection(kind RecordKind) []*Record {
	if y == nil {
		return nil
	}
	switch kind {
	case KindIncome:
		return y.Income
	case KindExpense:
		return y.Expense
	case KindPayments:
		return y.Payments
	case KindPartners:
		return y.Partners
	}
	return nil
}

// SetCollection reemplaza la secuencia de un tipo.
func (y *YearData) SetCollection(kind RecordKind, recs []*Record) {
	switch kind {
	case KindIncome:
		y.Income = recs
	case KindExpense:
		y.Expense = recs
	case KindPayments:
		y.Payments = recs
	case KindPartners:
		y.Partners = recs
	}
}

// FindRecord localiza un registro por id canónico dentro de una secuencia.
func (y *YearData) FindRecord(kind RecordKind, id RecordID) *Record {
	for _, r := range y.Collection(kind) {
		if r != nil && r.ID == id {
			return r
		}
	}
	return nil
}

// PriceEntry es una cotización puntual de un producto para un grupo de almacenes.
type PriceEntry struct {
	Price     Numeric `json:"price"`
	Time      string  `json:"time,omitempty"`
	User      string  `json:"user,omitempty"`
	Timestamp int64   `json:"timestamp,omitempty"`
}

// PriceBook es el historial de precios: fecha → producto → grupo → entradas.
type PriceBook map[string]map[string]map[string][]PriceEntry

// Dataset es el agregado raíz del libro compartido. Se carga y persiste
// entero por operación; no hay mutación parcial del documento remoto.
type Dataset struct {
	Years map[string]*YearData `json:"years,omitempty"`

	Clients         []*RefEntity `json:"clients,omitempty"`
	Products        []*RefEntity `json:"products,omitempty"`
	Companies       []*RefEntity `json:"companies,omitempty"`
	Warehouses      []*RefEntity `json:"warehouses,omitempty"`
	WarehouseGroups []*RefEntity `json:"warehouseGroups,omitempty"`
	Coalitions      []*RefEntity `json:"coalitions,omitempty"`

	Users []*User `json:"users,omitempty"`

	ProductPrices PriceBook        `json:"productPrices,omitempty"`
	CurrentYear   string           `json:"currentYear,omitempty"`
	UserLastLogin map[string]int64 `json:"userLastLogin,omitempty"`

	LastModified   int64  `json:"lastModified,omitempty"` // epoch ms
	LastModifiedBy string `json:"lastModifiedBy,omitempty"`
	LastSync       int64  `json:"lastSync,omitempty"`
	LastSyncBy     string `json:"lastSyncBy,omitempty"`
}

// Year devuelve la partición de un año, o nil si no existe. La ausencia de
// partición nunca es un error: los reportes la tratan como "sin datos".
func (d *Dataset) Year(label string) *YearData {
	if d == nil || d.Years == nil {
		return nil
	}
	return d.Years[label]
}

// EnsureYear devuelve la partición del año, creándola vacía si hace falta.
func (d *Dataset) EnsureYear(label string) *YearData {
	if d.Years == nil {
		d.Years = make(map[string]*YearData)
	}
	y := d.Years[label]
	if y == nil {
		y = &YearData{
			Income:   []*Record{},
			Expense:  []*Record{},
			Payments: []*Record{},
			Partners: []*Record{},
		}
		d.Years[label] = y
	}
	return y
}

// RefCollection es una colección de referencia con su clave del documento.
type RefCollection struct {
	Name string
	Ref  *[]*RefEntity
}

// RefCollections expone las seis colecciones de referencia en orden estable.
func (d *Dataset) RefCollections() []RefCollection {
	return []RefCollection{
		{"clients", &d.Clients},
		{"products", &d.Products},
		{"companies", &d.Companies},
		{"warehouses", &d.Warehouses},
		{"warehouseGroups", &d.WarehouseGroups},
		{"coalitions", &d.Coalitions},
	}
}

// RefCollectionByName devuelve la colección con esa clave, o nil.
func (d *Dataset) RefCollectionByName(name string) *[]*RefEntity {
	for _, c := range d.RefCollections() {
		if c.Name == name {
			return c.Ref
		}
	}
	return nil
}

// FindUser localiza una cuenta activa por username.
func (d *Dataset) FindUser(username string) *User {
	if d == nil {
		return nil
	}
	for _, u := range d.Users {
		if u != nil && u.Username == username && !u.Deleted() {
			return u
		}
	}
	return nil
}

// Touch sella los metadatos de modificación; lo invoca toda mutación
// exitosa para que el reconciliador pueda decidir qué snapshot es más nuevo.
func (d *Dataset) Touch(actor string, at time.Time) {
	d.LastModified = at.UnixMilli()
	d.LastModifiedBy = actor
}

// WarehouseGroupMap devuelve el mapeo almacén → grupo a partir de la
// colección de almacenes (solo entradas activas con grupo).
func (d *Dataset) WarehouseGroupMap() map[string]string {
	m := make(map[string]string)
	if d == nil {
		return m
	}
	for _, w := range d.Warehouses {
		if w != nil && !w.IsDeleted() && w.Name != "" && w.Group != "" {
			m[w.Name] = w.Group
		}
	}
	return m
}

// Clone devuelve una copia profunda vía ida y vuelta JSON (el mismo
// mecanismo que el intercambio con el store remoto, así la copia pasa por
// exactamente las mismas normalizaciones de forma).
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return d
	}
	var out Dataset
	if err := json.Unmarshal(b, &out); err != nil {
		return d
	}
	return &out
}
