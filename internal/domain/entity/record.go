package entity

import (
	"time"
)

// RecordKind identifica una de las cuatro secuencias de una partición anual.
// Los valores coinciden con las claves del documento JSON compartido.
type RecordKind string

const (
	KindIncome   RecordKind = "income"
	KindExpense  RecordKind = "expense"
	KindPayments RecordKind = "payments"
	KindPartners RecordKind = "partners"
)

// ParseRecordKind acepta los nombres de colección y sus singulares históricos
// (la papelera de la app web usa "payment" en vez de "payments").
func ParseRecordKind(s string) (RecordKind, bool) {
	switch s {
	case "income":
		return KindIncome, true
	case "expense":
		return KindExpense, true
	case "payments", "payment":
		return KindPayments, true
	case "partners", "partner":
		return KindPartners, true
	}
	return "", false
}

// RecordKinds lista las secuencias en orden estable (para iteraciones deterministas).
var RecordKinds = []RecordKind{KindIncome, KindExpense, KindPayments, KindPartners}

// Record es una transacción del libro: приход (income), расход (expense),
// погашение (payment) o partner. Las tres variantes comparten struct porque
// comparten colección física; los campos no aplicables quedan en su valor
// cero y se omiten al serializar.
//
// Un Record es un hecho de negocio inmutable una vez creado; solo muta vía
// borrado lógico / restauración. La tripleta de borrado (IsDeleted,
// DeletedAt, DeletedBy) se escribe y se limpia siempre junta.
type Record struct {
	ID        RecordID `json:"id"`
	Date      string   `json:"date,omitempty"` // YYYY-MM-DD, sin componente horario
	Wagon     string   `json:"wagon,omitempty"`
	Company   string   `json:"company,omitempty"`
	Warehouse string   `json:"warehouse,omitempty"`
	Product   string   `json:"product,omitempty"`
	Client    string   `json:"client,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Quantity  Numeric  `json:"quantity,omitzero"`
	QtyDoc    Numeric  `json:"qtyDoc,omitzero"`
	QtyFact   Numeric  `json:"qtyFact,omitzero"`
	Price     Numeric  `json:"price,omitzero"`
	Total     Numeric  `json:"total,omitzero"`
	Amount    Numeric  `json:"amount,omitzero"`
	Notes     string   `json:"notes,omitempty"`
	Note      string   `json:"note,omitempty"` // los pagos históricos usan "note"
	User      string   `json:"user,omitempty"`

	IsDeleted  bool   `json:"isDeleted,omitempty"`
	DeletedAt  int64  `json:"deletedAt,omitempty"` // epoch ms, como Date.now()
	DeletedBy  string `json:"deletedBy,omitempty"`
	RestoredAt int64  `json:"restoredAt,omitempty"`
	RestoredBy string `json:"restoredBy,omitempty"`
}

// Deleted informa si el registro está lógicamente borrado.
func (r *Record) Deleted() bool { return r != nil && r.IsDeleted }

// MarkDeleted escribe la tripleta de borrado completa. Re-sellar un registro
// ya borrado actualiza DeletedAt/DeletedBy (la operación es idempotente).
func (r *Record) MarkDeleted(actor string, at time.Time) {
	r.IsDeleted = true
	r.DeletedAt = at.UnixMilli()
	r.DeletedBy = actor
}

// ClearDeleted limpia la tripleta completa y deja constancia de quién restauró.
func (r *Record) ClearDeleted(actor string, at time.Time) {
	r.IsDeleted = false
	r.DeletedAt = 0
	r.DeletedBy = ""
	r.RestoredAt = at.UnixMilli()
	r.RestoredBy = actor
}

// NoteText devuelve la nota del registro con independencia del nombre de
// campo que usó la ruta de escritura original.
func (r *Record) NoteText() string {
	if r.Notes != "" {
		return r.Notes
	}
	return r.Note
}
