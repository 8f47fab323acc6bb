// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents one user-authored item.
//
// ClientID is a collision-resistant identifier generated by the composer;
// ID is assigned by the store. AuthorEmail references Profile.Email by
// convention only; an author with no matching profile is tolerated.
// Posts are immutable after creation.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClientID    string    `gorm:"index" json:"client_id"`
	Title       string    `gorm:"not null" json:"title"`
	Text        string    `gorm:"type:text" json:"text"`
	ImageURL    string    `json:"image_url"`
	AuthorEmail string    `gorm:"index;not null" json:"author_email"`
	Private     bool      `json:"private"`
	CreatedAt   time.Time `json:"created_at"`
}
