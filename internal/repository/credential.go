package repository

import (
	"context"
	"errors"

	"postify/internal/models"

	"gorm.io/gorm"
)

// CredentialRepository defines persistence operations for login credentials.
type CredentialRepository interface {
	Create(ctx context.Context, cred *models.Credential) error
	// FetchByEmail returns the credential for the given email, or nil when absent.
	FetchByEmail(ctx context.Context, email string) (*models.Credential, error)
}

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository returns a new CredentialRepository implementation.
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Create(ctx context.Context, cred *models.Credential) error {
	if err := r.db.WithContext(ctx).Create(cred).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Email already in use.")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *credentialRepository) FetchByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &cred, nil
}
