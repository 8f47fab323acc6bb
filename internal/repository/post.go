package repository

import (
	"context"

	"postify/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
//
// Posts are append-only: there is no update or delete. FetchByAuthor is a
// single equality filter with no ordering clause; visibility filtering and
// sorting are the feed's job, not the store's.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FetchByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) FetchByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Where("author_email = ?", authorEmail).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
