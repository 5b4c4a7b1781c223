package dto

import (
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// SyncRequest snapshot local a reconciliar contra la copia cloud. El wrapper
// de namespacing histórico ("retailAppData" o "data") lo desenvuelve la capa
// HTTP; aquí llega el dataset ya plano.
type SyncRequest struct {
	Dataset *entity.Dataset `json:"dataset"`
}

// SyncResponse resultado de la reconciliación.
type SyncResponse struct {
	LastModified   int64  `json:"lastModified"`
	LastModifiedBy string `json:"lastModifiedBy"`
	Years          int    `json:"years"`
	Records        int    `json:"records"`
}
