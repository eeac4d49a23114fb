package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Antonybyrt/ready-to-fly/internal/repository"
)

// UserIDKey is the Locals key under which the resolved user id is stored.
const UserIDKey = "user_id"

// AuthMiddleware resolves the bearer session token to a user id. The lookup
// hits the session store on every request, with no in-process token cache, so
// a deleted session row stops working immediately. Every failure mode gets the
// same 403 body regardless of endpoint or cause; there is no anonymous
// fallthrough.
func AuthMiddleware(sessionRepo repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return forbidden(c)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return forbidden(c)
		}

		session, err := sessionRepo.GetByToken(c.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				log.Printf("[AUTH] session lookup failed: %v", err)
			}
			return forbidden(c)
		}

		c.Locals(UserIDKey, session.UserID)

		return c.Next()
	}
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "forbidden",
	})
}

// UserID reads the resolved identity placed by AuthMiddleware. Handlers
// behind the middleware can rely on it being present.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDKey).(int64)
	return id
}
