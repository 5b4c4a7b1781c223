package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("registro no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrUserBlocked         = errors.New("usuario bloqueado")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("registro duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrUpstreamUnavailable = errors.New("la base de datos remota no está disponible")
)
