package entity

import (
	"encoding/json"
	"time"
)

// Roles de usuario del sistema.
const (
	RoleAdmin     = "admin"
	RoleWarehouse = "warehouse"
	RoleCashier   = "cashier"
	RoleManager   = "manager"
)

// StringList tolera el doble formato histórico de warehouseGroup: algunos
// usuarios lo tienen como string simple y otros como array.
type StringList []string

// UnmarshalJSON acepta "grupo", ["g1","g2"] o null.
func (l *StringList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s == "" {
			*l = nil
		} else {
			*l = StringList{s}
		}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		*l = nil
		return nil
	}
	*l = StringList(arr)
	return nil
}

// User es una cuenta del dataset compartido. Password lleva un hash SHA-256
// hex heredado de la aplicación web o un hash bcrypt de cuentas nuevas.
type User struct {
	Username       string     `json:"username"`
	Name           string     `json:"name,omitempty"`
	Password       string     `json:"password,omitempty"`
	Role           string     `json:"role,omitempty"`
	WarehouseGroup StringList `json:"warehouseGroup,omitempty"`
	Blocked        bool       `json:"blocked,omitempty"`

	IsDeleted bool   `json:"isDeleted,omitempty"`
	DeletedAt int64  `json:"deletedAt,omitempty"`
	DeletedBy string `json:"deletedBy,omitempty"`
}

// Deleted informa si la cuenta está lógicamente borrada.
func (u *User) Deleted() bool { return u != nil && u.IsDeleted }

// MarkDeleted escribe la tripleta de borrado completa.
func (u *User) MarkDeleted(actor string, at time.Time) {
	u.IsDeleted = true
	u.DeletedAt = at.UnixMilli()
	u.DeletedBy = actor
}

// Unrestricted indica si la cuenta ve todos los almacenes: admin o sin
// grupos asignados (el heredado guarda a veces [""], que cuenta como vacío).
func (u *User) Unrestricted() bool {
	if u.Role == RoleAdmin {
		return true
	}
	return len(u.WarehouseGroup) == 0 || u.WarehouseGroup[0] == ""
}
