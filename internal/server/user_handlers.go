package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
// @Summary Profile directory
// @Description List every profile, the caller's own first, others in store order
// @Tags users
// @Produce json
// @Success 200 {object} service.DirectoryView
// @Failure 500 {object} service.DirectoryView
// @Security BearerAuth
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	view, err := s.directory.Load(c.UserContext(), currentSession(c))
	if err != nil {
		// The failed state is part of the view, not a bare error: clients
		// render it distinctly from an empty directory.
		return c.Status(fiber.StatusInternalServerError).JSON(view)
	}
	return c.JSON(view)
}
