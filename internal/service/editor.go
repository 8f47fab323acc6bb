package service

import (
	"context"
	"log/slog"

	"postify/internal/models"
	"postify/internal/repository"
	"postify/internal/session"
)

// ProfileForm is the editable subset of a profile.
type ProfileForm struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// EditorView is the settings screen's view state: the form populated from
// the stored profile (blank fields when absent), and whether a stored
// document exists yet.
type EditorView struct {
	State  LoadState   `json:"state"`
	Email  string      `json:"email"`
	Form   ProfileForm `json:"form"`
	Exists bool        `json:"exists"`
}

// ProfileEditorService loads and saves the session user's own profile.
type ProfileEditorService struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewProfileEditorService returns a ProfileEditorService backed by the given store.
func NewProfileEditorService(profiles repository.ProfileRepository, logger *slog.Logger) *ProfileEditorService {
	return &ProfileEditorService{profiles: profiles, logger: logger}
}

// Load resolves the session user's profile document. A missing document is
// not an error: the form comes back blank and a later Save creates it.
func (s *ProfileEditorService) Load(ctx context.Context, sess session.Identity) (EditorView, error) {
	if !sess.Authenticated() {
		return EditorView{State: StateFailed}, models.NewUnauthorizedError("Sign in to update settings")
	}

	var profile *models.Profile
	err := retryOnce(func() error {
		var fetchErr error
		profile, fetchErr = s.profiles.FetchByEmail(ctx, sess.Email)
		return fetchErr
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "profile fetch failed", slog.String("error", err.Error()))
		return EditorView{State: StateFailed, Email: sess.Email}, err
	}

	view := EditorView{State: StateLoaded, Email: sess.Email}
	if profile != nil {
		view.Exists = true
		view.Form = ProfileForm{
			DisplayName: profile.DisplayName,
			AvatarURL:   profile.AvatarURL,
		}
	}
	return view, nil
}

// Save persists the form for the session user: it creates the profile
// document when none exists, otherwise overwrites the stored email, display
// name, and avatar wholesale. No validation is performed on the avatar URL.
// The write is awaited; errors are returned to the caller, never swallowed.
func (s *ProfileEditorService) Save(ctx context.Context, sess session.Identity, form ProfileForm) (*models.Profile, error) {
	if !sess.Authenticated() {
		return nil, models.NewUnauthorizedError("Sign in to update settings")
	}

	existing, err := s.profiles.FetchByEmail(ctx, sess.Email)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := &models.Profile{
			Email:       sess.Email,
			DisplayName: form.DisplayName,
			AvatarURL:   form.AvatarURL,
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	existing.Email = sess.Email
	existing.DisplayName = form.DisplayName
	existing.AvatarURL = form.AvatarURL
	if err := s.profiles.Overwrite(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
