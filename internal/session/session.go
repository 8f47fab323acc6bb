// Package session defines the session capability handed to the view-model
// services: the externally-owned signal of which user, if any, is currently
// authenticated. Services receive an Identity explicitly instead of reaching
// for an ambient auth handle.
package session

import "strings"

// Identity identifies the current session user by email. The zero value
// means "no one is signed in".
type Identity struct {
	Email string
}

// Authenticated reports whether a user is signed in.
func (id Identity) Authenticated() bool {
	return id.Email != ""
}

// Is reports whether the session belongs to the given email. Emails are
// compared case-insensitively, matching how the auth provider treats them.
func (id Identity) Is(email string) bool {
	return id.Email != "" && strings.EqualFold(id.Email, email)
}
