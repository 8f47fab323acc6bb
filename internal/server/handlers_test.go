package server

import (
	"io"
	"log/slog"
	"testing"

	"postify/internal/config"
	"postify/internal/middleware"
	"postify/internal/models"
	"postify/internal/repository"
	"postify/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Credential{},
		&models.Profile{},
		&models.Post{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// newTestServer builds a Server over an in-memory store, skipping Redis and
// the Prometheus request middleware.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db := setupHandlerTestDB(t)

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		Env:              "test",
		DefaultAvatarURL: "https://example.com/default.png",
		NoPostsMessage:   "No posts yet!",
		FeedErrorMessage: "Couldn't load posts.",
	}
	middleware.InitMiddleware(cfg)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		profileRepo:    profileRepo,
		postRepo:       postRepo,
		credentialRepo: credentialRepo,
		directory:      service.NewDirectoryService(profileRepo, cfg.DefaultAvatarURL, logger),
		feed:           service.NewFeedService(postRepo, cfg.NoPostsMessage, cfg.FeedErrorMessage, logger),
		composer:       service.NewComposerService(postRepo, logger),
		editor:         service.NewProfileEditorService(profileRepo, logger),
	}
	return s, db
}

// sessionStub injects a session identity the way the auth middleware would.
func sessionStub(email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userEmail", email)
		return c.Next()
	}
}
