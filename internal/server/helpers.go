package server

import (
	"postify/internal/session"

	"github.com/gofiber/fiber/v2"
)

// currentSession resolves the session capability from the auth middleware's
// locals. On public routes this returns the zero Identity.
func currentSession(c *fiber.Ctx) session.Identity {
	if email, ok := c.Locals("userEmail").(string); ok {
		return session.Identity{Email: email}
	}
	return session.Identity{}
}
