package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Avesta-api/internal/application/dto"
	"github.com/jhoicas/Avesta-api/internal/application/usecase"
	"github.com/jhoicas/Avesta-api/internal/domain/entity"
	"github.com/jhoicas/Avesta-api/pkg/jwt"
)

// Locals keys para la identidad del solicitante en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
	LocalGroups   = "warehouse_groups"
)

// AuthMiddleware valida el Bearer Token JWT y deja username, rol y grupos de
// almacén en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalGroups, claims.WarehouseGroups)
		return c.Next()
	}
}

// RequireAdmin corta con 403 si el rol del token no es admin. Se apila
// después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol admin"})
		}
		return c.Next()
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetGroups devuelve los grupos de almacén del contexto.
func GetGroups(c *fiber.Ctx) []string {
	g, _ := c.Locals(LocalGroups).([]string)
	return g
}

// GetViewer arma la identidad del solicitante para la capa de aplicación.
func GetViewer(c *fiber.Ctx) usecase.Viewer {
	return usecase.Viewer{
		Username: GetUsername(c),
		Role:     GetRole(c),
		Groups:   GetGroups(c),
	}
}
