package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse vista pública de una cuenta (sin password).
type UserResponse struct {
	Username        string   `json:"username"`
	Name            string   `json:"name,omitempty"`
	Role            string   `json:"role"`
	WarehouseGroups []string `json:"warehouseGroups,omitempty"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
