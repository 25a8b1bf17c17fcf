package model

import (
	"time"

	"github.com/rs/xid"
)

type BookmarkID string

func NewBookmarkID() BookmarkID {
	return BookmarkID(xid.New().String())
}

// Bookmark is a link saved by a single user. Bookmarks are immutable after
// creation: the only mutations are insert and delete.
type Bookmark interface {
	WithID[BookmarkID]
	WithOwner
	WithLifecycle

	Title() string
	URL() string
}

type ReadOnlyBookmark struct {
	id        BookmarkID
	owner     UserID
	title     string
	url       string
	createdAt time.Time
}

// ID implements Bookmark.
func (b *ReadOnlyBookmark) ID() BookmarkID {
	return b.id
}

// Owner implements Bookmark.
func (b *ReadOnlyBookmark) Owner() UserID {
	return b.owner
}

// Title implements Bookmark.
func (b *ReadOnlyBookmark) Title() string {
	return b.title
}

// URL implements Bookmark.
func (b *ReadOnlyBookmark) URL() string {
	return b.url
}

// CreatedAt implements Bookmark.
func (b *ReadOnlyBookmark) CreatedAt() time.Time {
	return b.createdAt
}

var _ Bookmark = &ReadOnlyBookmark{}

func NewReadOnlyBookmark(id BookmarkID, owner UserID, title, url string, createdAt time.Time) *ReadOnlyBookmark {
	return &ReadOnlyBookmark{
		id:        id,
		owner:     owner,
		title:     title,
		url:       url,
		createdAt: createdAt,
	}
}
