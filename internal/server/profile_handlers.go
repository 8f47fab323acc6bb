package server

import (
	"postify/internal/models"
	"postify/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile
// @Summary Load profile settings
// @Description The caller's profile form, blank when no document exists yet
// @Tags profile
// @Produce json
// @Success 200 {object} service.EditorView
// @Failure 500 {object} service.EditorView
// @Security BearerAuth
// @Router /profile [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	view, err := s.editor.Load(c.UserContext(), currentSession(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(view)
	}
	return c.JSON(view)
}

// SaveMyProfile handles PUT /api/profile
// @Summary Save profile settings
// @Description Create the caller's profile document or overwrite it wholesale
// @Tags profile
// @Accept json
// @Produce json
// @Param request body service.ProfileForm true "Profile fields"
// @Success 200 {object} object{message=string,profile=models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (s *Server) SaveMyProfile(c *fiber.Ctx) error {
	var form service.ProfileForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.editor.Save(c.UserContext(), currentSession(c), form)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message": "Changes Saved",
		"profile": profile,
	})
}
