package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/storefront-backend/internal/application/dto"
	"github.com/jhoicas/storefront-backend/pkg/jwt"
)

// Locals keys y nombre de la cookie de sesión.
const (
	LocalSubject      = "subject"
	LocalRole         = "role"
	SessionCookieName = "admin_session"
)

// AuthMiddleware valida el Bearer Token (firmado con jwtSecret) o, si no hay header,
// la cookie de sesión (firmada con cookieSecret). Deja subject y role en c.Locals.
func AuthMiddleware(jwtSecret, cookieSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			session := c.Cookies(SessionCookieName)
			if session == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header o cookie de sesión requerido"})
			}
			return authenticate(c, cookieSecret, session)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		return authenticate(c, jwtSecret, tokenString)
	}
}

func authenticate(c *fiber.Ctx, secret, token string) error {
	subject, role, err := jwt.Parse(secret, token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	c.Locals(LocalSubject, subject)
	c.Locals(LocalRole, role)
	return c.Next()
}

// RequireRole permite el paso solo si el rol del token está en roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

// GetSubject devuelve el subject del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetRole devuelve el rol del token (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
