package service

import (
	"context"
	"log/slog"
	"sort"

	"postify/internal/models"
	"postify/internal/repository"
	"postify/internal/session"
)

// FeedItem is one rendered post: the document plus its date and time strings.
type FeedItem struct {
	Post models.Post `json:"post"`
	Date string      `json:"date"` // MM/DD/YYYY
	Time string      `json:"time"` // HH:MM:SS
}

// FeedView is the post feed screen's view state. Status carries the message
// to show in place of a list for the empty and failed states.
type FeedView struct {
	State       LoadState  `json:"state"`
	PosterEmail string     `json:"poster_email"`
	IsOwn       bool       `json:"is_own"`
	Status      string     `json:"status,omitempty"`
	Items       []FeedItem `json:"items"`
}

// FeedService loads the public posts of a chosen author, newest first.
type FeedService struct {
	posts          repository.PostRepository
	noPostsMessage string
	errorMessage   string
	logger         *slog.Logger
}

// NewFeedService returns a FeedService backed by the given store. The two
// messages are the texts shown for an empty feed and a failed load.
func NewFeedService(posts repository.PostRepository, noPostsMessage, errorMessage string, logger *slog.Logger) *FeedService {
	return &FeedService{
		posts:          posts,
		noPostsMessage: noPostsMessage,
		errorMessage:   errorMessage,
		logger:         logger,
	}
}

// Load fetches the posts of posterEmail (defaulting to the session user when
// empty), retains only public ones, and orders them newest first. The store
// query is a single equality filter; visibility filtering and sorting happen
// here. Posts with no timestamp keep their relative order. IsOwn reports
// whether the viewed feed belongs to the session user, which drives the
// composer affordance.
func (s *FeedService) Load(ctx context.Context, sess session.Identity, posterEmail string) (FeedView, error) {
	if posterEmail == "" {
		posterEmail = sess.Email
	}
	view := FeedView{
		PosterEmail: posterEmail,
		IsOwn:       sess.Is(posterEmail),
	}

	var fetched []models.Post
	err := retryOnce(func() error {
		var fetchErr error
		fetched, fetchErr = s.posts.FetchByAuthor(ctx, posterEmail)
		return fetchErr
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "feed fetch failed",
			slog.String("poster", posterEmail),
			slog.String("error", err.Error()),
		)
		view.State = StateFailed
		view.Status = s.errorMessage
		return view, err
	}

	public := make([]models.Post, 0, len(fetched))
	for _, p := range fetched {
		if !p.Private {
			public = append(public, p)
		}
	}

	// Newest first; a missing timestamp on either side compares equal, so
	// such pairs keep their current relative order.
	sort.SliceStable(public, func(i, j int) bool {
		if public[i].CreatedAt.IsZero() || public[j].CreatedAt.IsZero() {
			return false
		}
		return public[i].CreatedAt.After(public[j].CreatedAt)
	})

	if len(public) == 0 {
		view.State = StateEmpty
		view.Status = s.noPostsMessage
		return view, nil
	}

	view.State = StateLoaded
	view.Items = make([]FeedItem, 0, len(public))
	for _, p := range public {
		view.Items = append(view.Items, FeedItem{
			Post: p,
			Date: p.CreatedAt.Format("01/02/2006"),
			Time: p.CreatedAt.Format("15:04:05"),
		})
	}
	return view, nil
}
