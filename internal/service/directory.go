package service

import (
	"context"
	"log/slog"

	"postify/internal/models"
	"postify/internal/repository"
	"postify/internal/session"
)

// DirectoryEntry is one row of the profile directory, with display fallbacks
// already applied.
type DirectoryEntry struct {
	Profile     models.Profile `json:"profile"`
	IsSelf      bool           `json:"is_self"`
	DisplayName string         `json:"display_name"`
	AvatarURL   string         `json:"avatar_url"`
}

// DirectoryView is the directory screen's view state.
type DirectoryView struct {
	State   LoadState        `json:"state"`
	Entries []DirectoryEntry `json:"entries"`
}

// DirectoryService lists all known profiles with the session user's own
// profile first.
type DirectoryService struct {
	profiles      repository.ProfileRepository
	defaultAvatar string
	logger        *slog.Logger
}

// NewDirectoryService returns a DirectoryService backed by the given store.
func NewDirectoryService(profiles repository.ProfileRepository, defaultAvatar string, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{profiles: profiles, defaultAvatar: defaultAvatar, logger: logger}
}

// Load fetches every profile and partitions the result: the caller's own
// profile (matched by email against the session) comes first, the rest keep
// their store-returned relative order. A fetch failure yields StateFailed,
// never a silently empty list.
func (s *DirectoryService) Load(ctx context.Context, sess session.Identity) (DirectoryView, error) {
	var fetched []models.Profile
	err := retryOnce(func() error {
		var fetchErr error
		fetched, fetchErr = s.profiles.FetchAll(ctx)
		return fetchErr
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "directory fetch failed", slog.String("error", err.Error()))
		return DirectoryView{State: StateFailed}, err
	}

	if len(fetched) == 0 {
		return DirectoryView{State: StateEmpty}, nil
	}

	var self []models.Profile
	var others []models.Profile
	for _, p := range fetched {
		if sess.Is(p.Email) {
			self = append(self, p)
		} else {
			others = append(others, p)
		}
	}

	entries := make([]DirectoryEntry, 0, len(fetched))
	for _, p := range self {
		entries = append(entries, s.entry(p, true))
	}
	for _, p := range others {
		entries = append(entries, s.entry(p, false))
	}

	return DirectoryView{State: StateLoaded, Entries: entries}, nil
}

func (s *DirectoryService) entry(p models.Profile, isSelf bool) DirectoryEntry {
	return DirectoryEntry{
		Profile:     p,
		IsSelf:      isSelf,
		DisplayName: p.DisplayLabel(),
		AvatarURL:   p.AvatarOrDefault(s.defaultAvatar),
	}
}
