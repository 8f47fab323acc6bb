package models

import "time"

// Credential is an auth-provider record: the login secret for one email.
// It is deliberately separate from Profile. Authentication state and the
// profile document live in different collections, and a user can be
// authenticated before a profile document exists.
type Credential struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
