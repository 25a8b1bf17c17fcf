package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
)

func TestBookmarkManagerCreateBookmark(t *testing.T) {
	ctx := context.Background()

	store := newFakeBookmarkStore()
	feed := &recordingFeed{}
	manager := NewBookmarkManager(store, feed)

	owner := model.NewUserID()

	bookmark, err := manager.CreateBookmark(ctx, owner, "  Example  ", " https://example.com ")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Example", bookmark.Title(); e != g {
		t.Errorf("bookmark.Title(): expected %q, got %q", e, g)
	}

	if e, g := "https://example.com", bookmark.URL(); e != g {
		t.Errorf("bookmark.URL(): expected %q, got %q", e, g)
	}

	bookmarks, err := manager.ListBookmarks(ctx, owner)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(bookmarks); e != g {
		t.Fatalf("len(bookmarks): expected %d, got %d", e, g)
	}

	events := feed.Events()

	if e, g := 1, len(events); e != g {
		t.Fatalf("len(events): expected %d, got %d", e, g)
	}

	if e, g := model.BookmarkCreated, events[0].Type; e != g {
		t.Errorf("events[0].Type: expected %q, got %q", e, g)
	}

	if e, g := owner, events[0].OwnerID; e != g {
		t.Errorf("events[0].OwnerID: expected %q, got %q", e, g)
	}
}

func TestBookmarkManagerCreateBookmarkValidation(t *testing.T) {
	type testCase struct {
		Name          string
		Title         string
		URL           string
		ExpectedError error
	}

	testCases := []testCase{
		{
			Name:          "empty title",
			Title:         "",
			URL:           "https://example.com",
			ExpectedError: ErrMissingFields,
		},
		{
			Name:          "whitespace only title",
			Title:         "   ",
			URL:           "https://example.com",
			ExpectedError: ErrMissingFields,
		},
		{
			Name:          "empty url",
			Title:         "Example",
			URL:           "",
			ExpectedError: ErrMissingFields,
		},
		{
			Name:          "title too long",
			Title:         strings.Repeat("a", MaxTitleLength+1),
			URL:           "https://example.com",
			ExpectedError: ErrTitleTooLong,
		},
		{
			Name:          "relative url",
			Title:         "Example",
			URL:           "/some/path",
			ExpectedError: ErrInvalidURL,
		},
		{
			Name:          "disallowed scheme",
			Title:         "Example",
			URL:           "ftp://example.com",
			ExpectedError: ErrInvalidURL,
		},
		{
			Name:          "scheme without host",
			Title:         "Example",
			URL:           "https://",
			ExpectedError: ErrInvalidURL,
		},
		{
			Name:          "not a url at all",
			Title:         "Example",
			URL:           "not a url",
			ExpectedError: ErrInvalidURL,
		},
	}

	ctx := context.Background()

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store := newFakeBookmarkStore()
			feed := &recordingFeed{}
			manager := NewBookmarkManager(store, feed)

			owner := model.NewUserID()

			if _, err := manager.CreateBookmark(ctx, owner, tc.Title, tc.URL); !errors.Is(err, tc.ExpectedError) {
				t.Errorf("expected error %q, got %+v", tc.ExpectedError, err)
			}

			bookmarks, err := manager.ListBookmarks(ctx, owner)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := 0, len(bookmarks); e != g {
				t.Errorf("len(bookmarks): expected %d, got %d", e, g)
			}

			if e, g := 0, len(feed.Events()); e != g {
				t.Errorf("len(events): expected %d, got %d", e, g)
			}
		})
	}
}

func TestBookmarkManagerDeleteBookmark(t *testing.T) {
	ctx := context.Background()

	store := newFakeBookmarkStore()
	feed := &recordingFeed{}
	manager := NewBookmarkManager(store, feed)

	owner := model.NewUserID()
	other := model.NewUserID()

	bookmark, err := manager.CreateBookmark(ctx, owner, "Example", "https://example.com")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Another user deleting a guessed id must not remove the row nor be
	// distinguishable from deleting a non-existent one

	if err := manager.DeleteBookmark(ctx, other, bookmark.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	bookmarks, err := manager.ListBookmarks(ctx, owner)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(bookmarks); e != g {
		t.Fatalf("len(bookmarks): expected %d, got %d", e, g)
	}

	if err := manager.DeleteBookmark(ctx, owner, bookmark.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	bookmarks, err = manager.ListBookmarks(ctx, owner)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(bookmarks); e != g {
		t.Fatalf("len(bookmarks): expected %d, got %d", e, g)
	}

	events := feed.Events()

	if e, g := 2, len(events); e != g {
		t.Fatalf("len(events): expected %d, got %d", e, g)
	}

	if e, g := model.BookmarkDeleted, events[1].Type; e != g {
		t.Errorf("events[1].Type: expected %q, got %q", e, g)
	}

	if e, g := owner, events[1].PreviousOwnerID; e != g {
		t.Errorf("events[1].PreviousOwnerID: expected %q, got %q", e, g)
	}

	// Re-deleting is a no-op and publishes nothing

	if err := manager.DeleteBookmark(ctx, owner, bookmark.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(feed.Events()); e != g {
		t.Errorf("len(events): expected %d, got %d", e, g)
	}

	if err := manager.DeleteBookmark(ctx, owner, model.BookmarkID("")); !errors.Is(err, ErrMissingID) {
		t.Errorf("expected error %q, got %+v", ErrMissingID, err)
	}
}

type fakeBookmarkStore struct {
	mutex     sync.Mutex
	bookmarks []model.Bookmark
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{
		bookmarks: make([]model.Bookmark, 0),
	}
}

// CreateBookmark implements port.BookmarkStore.
func (s *fakeBookmarkStore) CreateBookmark(ctx context.Context, ownerID model.UserID, title, url string) (model.Bookmark, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	bookmark := model.NewReadOnlyBookmark(model.NewBookmarkID(), ownerID, title, url, time.Now())

	// most recent first
	s.bookmarks = append([]model.Bookmark{bookmark}, s.bookmarks...)

	return bookmark, nil
}

// DeleteBookmark implements port.BookmarkStore.
func (s *fakeBookmarkStore) DeleteBookmark(ctx context.Context, bookmarkID model.BookmarkID, ownerID model.UserID) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, b := range s.bookmarks {
		if b.ID() == bookmarkID && b.Owner() == ownerID {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// QueryBookmarks implements port.BookmarkStore.
func (s *fakeBookmarkStore) QueryBookmarks(ctx context.Context, ownerID model.UserID) ([]model.Bookmark, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	bookmarks := make([]model.Bookmark, 0)
	for _, b := range s.bookmarks {
		if b.Owner() == ownerID {
			bookmarks = append(bookmarks, b)
		}
	}

	return bookmarks, nil
}

var _ port.BookmarkStore = &fakeBookmarkStore{}

type recordingFeed struct {
	mutex  sync.Mutex
	events []model.BookmarkEvent
}

// Publish implements port.Feed.
func (f *recordingFeed) Publish(ctx context.Context, event model.BookmarkEvent) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.events = append(f.events, event)

	return nil
}

// Subscribe implements port.Feed.
func (f *recordingFeed) Subscribe(ctx context.Context, credential model.Credential) (port.Subscription, error) {
	return nil, errors.New("not implemented")
}

func (f *recordingFeed) Events() []model.BookmarkEvent {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return append([]model.BookmarkEvent{}, f.events...)
}

var _ port.Feed = &recordingFeed{}
