// Package report implementa el motor de agregación del libro: balances de
// stock, deudas, totales de vagones y reportes por período. Todas las
// funciones son puras (dataset de entrada → estructura de salida), ignoran
// los registros lógicamente borrados y aceptan un alcance de visibilidad
// opcional como pre-filtro.
//
// Asimetría de redondeo deliberada: las cifras de deuda se redondean a 2
// decimales (céntimos) y los tonelajes no se redondean. Es el comportamiento
// observado por los usuarios del sistema y se conserva tal cual.
package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Avesta-api/internal/domain/access"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// Conversión a toneladas: 20 unidades por tonelada, fija en todo el sistema.
const UnitsPerTon = 20

var tonDivisor = decimal.NewFromInt(UnitsPerTon)

// Tons convierte unidades crudas a toneladas. Sin redondeo.
func Tons(q entity.Numeric) entity.Numeric {
	return entity.N(q.Decimal.Div(tonDivisor))
}

// newCollator construye un colador para nombres en cirílico. Los nombres de
// clientes, productos y almacenes del dataset están mayormente en ruso y el
// orden por bytes UTF-8 no sirve para listados de cara al usuario.
//
// collate.Collator no es seguro para uso concurrente, así que cada
// ordenación crea el suyo.
func newCollator() *collate.Collator {
	return collate.New(language.Russian)
}

// sortNames ordena nombres in situ con colación cirílica.
func sortNames(names []string) {
	newCollator().SortStrings(names)
}

// visible filtra los registros activos y permitidos por el alcance.
func visible(recs []*entity.Record, scope *access.Scope) []*entity.Record {
	out := make([]*entity.Record, 0, len(recs))
	for _, r := range recs {
		if r == nil || r.Deleted() {
			continue
		}
		if !scope.AllowsRecord(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// newestFirst ordena registros de más nuevo a más viejo: primero por fecha
// (YYYY-MM-DD compara bien como string) y, a igual fecha, por id descendente
// (los ids heredan de Date.now(), así que el mayor es el más reciente).
func newestFirst(recs []*entity.Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Date != recs[j].Date {
			return recs[i].Date > recs[j].Date
		}
		return idAfter(recs[i].ID, recs[j].ID)
	})
}

// idAfter compara ids canónicos como magnitudes cuando ambos son numéricos
// (longitud primero, luego lexicográfico) y como strings en caso contrario.
func idAfter(a, b entity.RecordID) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a > b
}
