package port

import (
	"context"

	"github.com/humlebaek/marks/internal/core/model"
)

type BookmarkStore interface {
	// CreateBookmark inserts a new bookmark owned by ownerID and returns it
	// with its store-assigned identity and creation time
	CreateBookmark(ctx context.Context, ownerID model.UserID, title, url string) (model.Bookmark, error)

	// DeleteBookmark deletes the bookmark identified by bookmarkID, scoped by
	// its owner. Deleting a missing or not-owned row is not an error; the
	// returned boolean tells whether a row was actually removed
	DeleteBookmark(ctx context.Context, bookmarkID model.BookmarkID, ownerID model.UserID) (bool, error)

	// QueryBookmarks returns all the bookmarks owned by ownerID, most recent
	// first
	QueryBookmarks(ctx context.Context, ownerID model.UserID) ([]model.Bookmark, error)
}
