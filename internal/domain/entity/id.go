package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RecordID identificador canónico de un registro del libro.
//
// La aplicación web histórica escribió ids numéricos (Date.now()) y también
// ids string según la ruta de escritura, así que el mismo id lógico puede
// llegar como 1706345678901 o "1706345678901". Aquí se normaliza TODO a una
// forma string canónica al entrar por JSON: las formas numéricas enteras
// colapsan a su representación decimal ("7", "7.0" y 7 → "7"), el resto
// conserva su string exacto. Con eso una sola comparación de igualdad
// reemplaza la escalera exacta / numérica / laxa del código heredado.
type RecordID string

// NormalizeID devuelve la forma canónica de un id arbitrario.
func NormalizeID(raw string) RecordID {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return RecordID(strconv.FormatInt(int64(f), 10))
	}
	return RecordID(s)
}

// Equals compara contra un id en cualquier representación.
func (id RecordID) Equals(other string) bool {
	return id == NormalizeID(other)
}

// String implementa fmt.Stringer.
func (id RecordID) String() string { return string(id) }

// UnmarshalJSON acepta ids string o numéricos y los deja en forma canónica.
func (id *RecordID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = NormalizeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = NormalizeID(n.String())
		return nil
	}
	// Forma irreconocible (objeto, array...): id vacío en vez de abortar la
	// carga del dataset completo.
	*id = ""
	return nil
}

// MarshalJSON emite siempre la forma string canónica.
func (id RecordID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
