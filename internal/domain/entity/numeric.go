package entity

import (
	"github.com/shopspring/decimal"
)

// Numeric es un decimal con parseo JSON tolerante: valores ausentes, null,
// strings vacíos o basura no numérica se coercionan a cero en vez de abortar
// la deserialización. El dataset compartido acumula años de escrituras de
// distintas rutas y la aritmética de reportes nunca debe caerse por un campo
// malformado.
type Numeric struct {
	decimal.Decimal
}

// N construye un Numeric desde un decimal (helper para tests y literales).
func N(d decimal.Decimal) Numeric { return Numeric{Decimal: d} }

// NFromFloat construye un Numeric desde un float64.
func NFromFloat(f float64) Numeric { return Numeric{Decimal: decimal.NewFromFloat(f)} }

// NFromInt construye un Numeric desde un int64.
func NFromInt(i int64) Numeric { return Numeric{Decimal: decimal.NewFromInt(i)} }

// UnmarshalJSON coerciona a cero todo lo que no sea un número válido.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}

// MarshalJSON emite un número JSON sin comillas: el dataset lo comparte una
// aplicación web que hace aritmética directa sobre estos campos.
func (n Numeric) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// Add devuelve n + other conservando el tipo Numeric.
func (n Numeric) AddN(other Numeric) Numeric {
	return Numeric{Decimal: n.Decimal.Add(other.Decimal)}
}

// SubN devuelve n − other conservando el tipo Numeric.
func (n Numeric) SubN(other Numeric) Numeric {
	return Numeric{Decimal: n.Decimal.Sub(other.Decimal)}
}
