// Package user resolves the caller identity placed in the request by the
// JWT middleware. Issuing tokens is the job of the external auth service.
package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

// LocalsKey is where the jwt middleware stores the parsed token.
const LocalsKey = "user"

// ErrUnauthorized is returned when no usable identity is attached.
var ErrUnauthorized = fiber.ErrUnauthorized

// GetUserIDFromCtx reads the numeric `user_id` claim of the request token.
func GetUserIDFromCtx(c *fiber.Ctx) (int, error) {
	u := c.Locals(LocalsKey)
	if u == nil {
		return 0, ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return 0, ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrUnauthorized
	}
	raw, ok := claims["user_id"]
	if !ok {
		return 0, ErrUnauthorized
	}

	var id int
	switch v := raw.(type) {
	case float64:
		id = int(v)
	case int:
		id = v
	case int64:
		id = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, ErrUnauthorized
		}
		id = parsed
	default:
		return 0, ErrUnauthorized
	}
	if id <= 0 {
		return 0, ErrUnauthorized
	}
	return id, nil
}

// Unauthorized writes the JSON 401 used by every protected handler.
func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
}

// HeaderIdentity injects a token built from the X-User-ID header. It stands
// in for the JWT middleware in handler tests and in the in-memory server.
func HeaderIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				c.Locals(LocalsKey, &jwt.Token{Claims: jwt.MapClaims{"user_id": id}})
			}
		}
		return c.Next()
	}
}

// JWT verifies the bearer token with secret and stores it under LocalsKey.
func JWT(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
		ContextKey: LocalsKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return Unauthorized(c)
		},
	})
}
