package dto

import (
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// CreateRecordRequest alta de un registro del libro. Kind decide qué campos
// aplican; los que no, se ignoran.
type CreateRecordRequest struct {
	Kind      string         `json:"kind"`
	Year      string         `json:"year,omitempty"`
	Date      string         `json:"date"`
	Wagon     string         `json:"wagon,omitempty"`
	Company   string         `json:"company,omitempty"`
	Warehouse string         `json:"warehouse,omitempty"`
	Product   string         `json:"product,omitempty"`
	Client    string         `json:"client,omitempty"`
	Unit      string         `json:"unit,omitempty"`
	Quantity  entity.Numeric `json:"quantity,omitzero"`
	QtyDoc    entity.Numeric `json:"qtyDoc,omitzero"`
	QtyFact   entity.Numeric `json:"qtyFact,omitzero"`
	Price     entity.Numeric `json:"price,omitzero"`
	Total     entity.Numeric `json:"total,omitzero"`
	Amount    entity.Numeric `json:"amount,omitzero"`
	Notes     string         `json:"notes,omitempty"`
}

// RecordResponse registro creado o mutado.
type RecordResponse struct {
	Kind   string         `json:"kind"`
	Year   string         `json:"year"`
	Record *entity.Record `json:"record"`
}

// PurgeAllResponse resultado de vaciar la papelera.
type PurgeAllResponse struct {
	Year   string `json:"year"`
	Purged int    `json:"purged"`
}
