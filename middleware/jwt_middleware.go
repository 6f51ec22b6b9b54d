package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bosscan/ginastel/utils"
)

// JWTMiddleware membaca token bearer dari header Authorization dan menaruh
// identitas user di locals.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Token tidak ditemukan atau format salah",
		})
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Token tidak valid atau kadaluarsa",
		})
	}

	c.Locals("userID", claims.ID)
	c.Locals("userRole", claims.Role)
	c.Locals("userNama", claims.Nama)

	return c.Next()
}

// JWTMiddlewareForExport reads JWT from Authorization header.
// If missing, it also accepts a token from query string (default: ?token=...).
// This is intentionally scoped for download endpoints invoked via window.open.
func JWTMiddlewareForExport(c *fiber.Ctx) error {
	tokenStr := ""

	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenStr == "" {
		tokenStr = c.Query("token", "")
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Token tidak ditemukan atau format salah",
		})
	}

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Token tidak valid atau kadaluarsa",
		})
	}

	c.Locals("userID", claims.ID)
	c.Locals("userRole", claims.Role)
	c.Locals("userNama", claims.Nama)

	return c.Next()
}

// RoleGuard menolak request bila role user tidak ada di daftar.
func RoleGuard(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Akses ditolak"})
	}
}
