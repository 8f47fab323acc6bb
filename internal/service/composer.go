package service

import (
	"context"
	"log/slog"

	"postify/internal/models"
	"postify/internal/repository"
	"postify/internal/session"

	"github.com/google/uuid"
)

// ComposeInput is the composer form: title, optional text, optional image
// URL, and the visibility flag. Public and private submissions differ only
// in Private.
type ComposeInput struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
	Private  bool   `json:"private"`
}

// WriteTask is the handle to an in-flight post write. The composer returns
// it instead of hard-coding navigate-then-background-write: the caller
// decides whether to await persistence before moving on.
type WriteTask struct {
	done chan struct{}
	post *models.Post
	err  error
}

// Wait blocks until the write completes or ctx is done, and returns the
// persisted post.
func (t *WriteTask) Wait(ctx context.Context) (*models.Post, error) {
	select {
	case <-t.done:
		return t.post, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ComposerService validates and submits new posts for the session user.
type ComposerService struct {
	posts  repository.PostRepository
	logger *slog.Logger
}

// NewComposerService returns a ComposerService backed by the given store.
func NewComposerService(posts repository.PostRepository, logger *slog.Logger) *ComposerService {
	return &ComposerService{posts: posts, logger: logger}
}

// Submit validates the input and starts the write. Validation failures are
// returned immediately; a valid submission returns a WriteTask whose Wait
// reports the persistence outcome. The write itself is not cancelled when
// ctx ends, so a caller that navigates away does not abort it.
func (s *ComposerService) Submit(ctx context.Context, sess session.Identity, in ComposeInput) (*WriteTask, error) {
	if !sess.Authenticated() {
		return nil, models.NewUnauthorizedError("Sign in to create posts")
	}
	if err := validateCompose(in); err != nil {
		return nil, err
	}

	post := &models.Post{
		ClientID:    uuid.NewString(),
		Title:       in.Title,
		Text:        in.Text,
		ImageURL:    in.ImageURL,
		AuthorEmail: sess.Email,
		Private:     in.Private,
	}

	task := &WriteTask{done: make(chan struct{}), post: post}
	writeCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(task.done)
		if err := s.posts.Create(writeCtx, post); err != nil {
			s.logger.ErrorContext(writeCtx, "post write failed",
				slog.String("client_id", post.ClientID),
				slog.String("author", post.AuthorEmail),
				slog.String("error", err.Error()),
			)
			task.err = err
		}
	}()
	return task, nil
}

// validateCompose enforces the creation invariant: a non-empty title and at
// least one of text/image URL.
func validateCompose(in ComposeInput) error {
	if in.Title == "" {
		return models.NewValidationError("Please fill all required fields")
	}
	if in.Text == "" && in.ImageURL == "" {
		return models.NewValidationError("Please fill all required fields")
	}
	return nil
}
