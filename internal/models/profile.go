// Package models contains data structures for the application's domain models.
package models

import "time"

// Profile represents one registered user's public profile document.
//
// Email is the natural key every other document references; a profile is
// created at signup with DisplayName equal to the email and is never deleted.
type Profile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayLabel returns the name to render for this profile, falling back to
// the email when no display name is set.
func (p *Profile) DisplayLabel() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Email
}

// AvatarOrDefault returns the avatar URL, or the given placeholder when the
// profile has none.
func (p *Profile) AvatarOrDefault(placeholder string) string {
	if p.AvatarURL != "" {
		return p.AvatarURL
	}
	return placeholder
}
