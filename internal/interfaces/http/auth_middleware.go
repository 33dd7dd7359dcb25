package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockops-api/pkg/jwt"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware valida el JWT de sesión (cookie o header Bearer) y carga los claims en c.Locals.
// La cookie tiene prioridad; el header sirve a clientes sin cookies.
func AuthMiddleware(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookieName)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if authHeader == "" {
				return respond(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authentication required")
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Expected: Bearer <token>")
			}
			tokenString = strings.TrimSpace(parts[1])
		}
		if tokenString == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authentication required")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired session")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_ROLE", "Session without role")
		}
		if _, ok := allowed[role]; !ok {
			return respond(c, fiber.StatusForbidden, CodeForbidden, "Forbidden")
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID de la sesión (0 si no hay).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
