package server

import (
	"postify/internal/middleware"
	"postify/internal/models"
	"postify/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts?poster=<email>
// @Summary Post feed
// @Description Public posts of the given author (defaults to the caller), newest first
// @Tags posts
// @Produce json
// @Param poster query string false "Author email; defaults to the session user"
// @Success 200 {object} service.FeedView
// @Failure 500 {object} service.FeedView
// @Security BearerAuth
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	view, err := s.feed.Load(c.UserContext(), currentSession(c), c.Query("poster"))
	middleware.FeedLoads.WithLabelValues(string(view.State)).Inc()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(view)
	}
	return c.JSON(view)
}

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Description Validate and persist a new public or private post for the caller
// @Tags posts
// @Accept json
// @Produce json
// @Param request body service.ComposeInput true "Post content"
// @Success 201 {object} object{message=string,post=models.Post}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.ComposeInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	task, err := s.composer.Submit(c.UserContext(), currentSession(c), in)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	// The write is an explicit task; this surface awaits it so a failure is
	// reported instead of vanishing behind an already-sent success.
	post, err := task.Wait(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	visibility := "public"
	if post.Private {
		visibility = "private"
	}
	middleware.PostsCreated.WithLabelValues(visibility).Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Uploaded Successfully!",
		"post":    post,
	})
}
