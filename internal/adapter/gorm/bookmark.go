package gorm

import (
	"time"

	"github.com/humlebaek/marks/internal/core/model"
)

type Bookmark struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Owner   *User
	OwnerID string `gorm:"index"`

	Title string
	URL   string
}

type wrappedBookmark struct {
	b *Bookmark
}

// ID implements model.Bookmark.
func (w *wrappedBookmark) ID() model.BookmarkID {
	return model.BookmarkID(w.b.ID)
}

// Owner implements model.Bookmark.
func (w *wrappedBookmark) Owner() model.UserID {
	return model.UserID(w.b.OwnerID)
}

// Title implements model.Bookmark.
func (w *wrappedBookmark) Title() string {
	return w.b.Title
}

// URL implements model.Bookmark.
func (w *wrappedBookmark) URL() string {
	return w.b.URL
}

// CreatedAt implements model.Bookmark.
func (w *wrappedBookmark) CreatedAt() time.Time {
	return w.b.CreatedAt
}

var _ model.Bookmark = &wrappedBookmark{}
