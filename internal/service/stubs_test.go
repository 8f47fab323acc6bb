package service

import (
	"context"
	"io"
	"log/slog"

	"postify/internal/models"
)

// stubProfileRepo implements repository.ProfileRepository with overridable
// functions so each test supplies only the behavior it needs.
type stubProfileRepo struct {
	fetchAll     func(ctx context.Context) ([]models.Profile, error)
	fetchByEmail func(ctx context.Context, email string) (*models.Profile, error)
	create       func(ctx context.Context, profile *models.Profile) error
	overwrite    func(ctx context.Context, profile *models.Profile) error
}

func (s *stubProfileRepo) FetchAll(ctx context.Context) ([]models.Profile, error) {
	return s.fetchAll(ctx)
}

func (s *stubProfileRepo) FetchByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.fetchByEmail(ctx, email)
}

func (s *stubProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	return s.create(ctx, profile)
}

func (s *stubProfileRepo) Overwrite(ctx context.Context, profile *models.Profile) error {
	return s.overwrite(ctx, profile)
}

type stubPostRepo struct {
	create        func(ctx context.Context, post *models.Post) error
	fetchByAuthor func(ctx context.Context, authorEmail string) ([]models.Post, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.create(ctx, post)
}

func (s *stubPostRepo) FetchByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error) {
	return s.fetchByAuthor(ctx, authorEmail)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
