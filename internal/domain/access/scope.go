// Package access resuelve qué almacenes puede ver una cuenta según su
// pertenencia a grupos de almacenes. El resultado es un predicado que la
// capa de informes aplica como pre-filtro antes de agregar.
package access

import (
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
)

// Scope es el alcance de visibilidad de una cuenta sobre los almacenes del
// dataset. Un Scope nil se comporta como sin restricciones.
type Scope struct {
	unrestricted bool
	groups       map[string]bool // grupos permitidos
	byWarehouse  map[string]string
}

// ForUser construye el alcance de u sobre ds. Los admin y las cuentas sin
// grupos asignados ven todo; el resto ve los almacenes cuyo grupo coincide
// con alguno de los suyos, más los almacenes sin grupo (siempre visibles).
func ForUser(ds *entity.Dataset, u *entity.User) *Scope {
	if u == nil {
		return &Scope{unrestricted: true, byWarehouse: ds.WarehouseGroupMap()}
	}
	return ForGroups(ds, u.Role, u.WarehouseGroup)
}

// ForGroups construye el alcance desde rol y grupos sueltos, tal como viajan
// en los claims del token.
func ForGroups(ds *entity.Dataset, role string, groups []string) *Scope {
	s := &Scope{byWarehouse: ds.WarehouseGroupMap()}
	s.groups = make(map[string]bool, len(groups))
	for _, g := range groups {
		if g != "" {
			s.groups[g] = true
		}
	}
	if role == entity.RoleAdmin || len(s.groups) == 0 {
		s.unrestricted = true
	}
	return s
}

// Unrestricted construye un alcance que permite todo. Útil en rutas internas
// (sincronización, exportes de administración) que no actúan por una cuenta.
func Unrestricted() *Scope {
	return &Scope{unrestricted: true}
}

// AllowsWarehouse decide si el almacén es visible. Un almacén desconocido o
// sin grupo asignado es visible para cualquiera.
func (s *Scope) AllowsWarehouse(name string) bool {
	if s == nil || s.unrestricted {
		return true
	}
	g := s.byWarehouse[name]
	if g == "" {
		return true
	}
	return s.groups[g]
}

// AllowsRecord decide si un registro es visible. Los registros sin almacén
// (pagos, socios) son visibles para cualquiera.
func (s *Scope) AllowsRecord(r *entity.Record) bool {
	if r == nil {
		return false
	}
	if r.Warehouse == "" {
		return true
	}
	return s.AllowsWarehouse(r.Warehouse)
}
