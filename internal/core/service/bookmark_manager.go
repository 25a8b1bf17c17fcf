package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/go-x/slogx"
	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/humlebaek/marks/internal/metrics"
	"github.com/pkg/errors"
)

// MaxTitleLength mirrors the maxlength constraint of the title input; it is
// enforced here too so the input layer is not the only guard.
const MaxTitleLength = 120

var (
	ErrMissingFields = errors.New("missing fields")
	ErrInvalidURL    = errors.New("invalid url")
	ErrTitleTooLong  = errors.New("title too long")
	ErrMissingID     = errors.New("missing id")
)

// BookmarkManager validates and executes bookmark mutations and reads,
// always scoped by the acting user, and publishes a change feed event after
// each committed mutation.
type BookmarkManager struct {
	store port.BookmarkStore
	feed  port.Feed
}

func NewBookmarkManager(store port.BookmarkStore, feed port.Feed) *BookmarkManager {
	return &BookmarkManager{
		store: store,
		feed:  feed,
	}
}

func (m *BookmarkManager) CreateBookmark(ctx context.Context, ownerID model.UserID, title, rawURL string) (model.Bookmark, error) {
	title = strings.TrimSpace(title)
	rawURL = strings.TrimSpace(rawURL)

	if title == "" || rawURL == "" {
		return nil, errors.WithStack(ErrMissingFields)
	}

	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, errors.WithStack(ErrTitleTooLong)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.WithStack(ErrInvalidURL)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, errors.WithStack(ErrInvalidURL)
	}

	bookmark, err := m.store.CreateBookmark(ctx, ownerID, title, rawURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.CreatedBookmarks.Inc()

	m.publish(ctx, model.BookmarkEvent{
		Type:       model.BookmarkCreated,
		BookmarkID: bookmark.ID(),
		OwnerID:    ownerID,
	})

	return bookmark, nil
}

func (m *BookmarkManager) DeleteBookmark(ctx context.Context, ownerID model.UserID, bookmarkID model.BookmarkID) error {
	if strings.TrimSpace(string(bookmarkID)) == "" {
		return errors.WithStack(ErrMissingID)
	}

	// The owner scope is the authorization boundary: a guessed id belonging
	// to someone else deletes nothing, and the caller cannot tell that case
	// apart from deleting a row that never existed.
	deleted, err := m.store.DeleteBookmark(ctx, bookmarkID, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !deleted {
		return nil
	}

	metrics.DeletedBookmarks.Inc()

	m.publish(ctx, model.BookmarkEvent{
		Type:            model.BookmarkDeleted,
		BookmarkID:      bookmarkID,
		PreviousOwnerID: ownerID,
	})

	return nil
}

func (m *BookmarkManager) ListBookmarks(ctx context.Context, ownerID model.UserID) ([]model.Bookmark, error) {
	bookmarks, err := m.store.QueryBookmarks(ctx, ownerID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return bookmarks, nil
}

// publish never fails the mutation: the store commit already happened, live
// sessions simply miss one refresh.
func (m *BookmarkManager) publish(ctx context.Context, event model.BookmarkEvent) {
	if m.feed == nil {
		return
	}

	if err := m.feed.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "could not publish bookmark event", slogx.Error(errors.WithStack(err)))
	}
}
