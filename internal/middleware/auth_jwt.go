package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth parses an optional bearer token and stashes the principal into
// Locals. Requests without a token pass through anonymous; RequireAuth /
// RequireRole decide per-route whether that is acceptable.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims sessionClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		email := claims.Email
		if email == "" {
			email = claims.Subject
		}
		if email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing email/sub")
		}

		c.Locals("email", email)
		c.Locals("name", claims.Name)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}
