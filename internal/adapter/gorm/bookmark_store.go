package gorm

import (
	"context"

	"github.com/humlebaek/marks/internal/core/model"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateBookmark implements port.BookmarkStore.
func (s *Store) CreateBookmark(ctx context.Context, ownerID model.UserID, title, url string) (model.Bookmark, error) {
	bookmark := &Bookmark{
		ID:      string(model.NewBookmarkID()),
		OwnerID: string(ownerID),
		Title:   title,
		URL:     url,
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(bookmark).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedBookmark{bookmark}, nil
}

// DeleteBookmark implements port.BookmarkStore.
func (s *Store) DeleteBookmark(ctx context.Context, bookmarkID model.BookmarkID, ownerID model.UserID) (bool, error) {
	var deleted bool

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		// Scoping by owner in addition to id is the authorization boundary:
		// a row owned by someone else is left intact and reported exactly
		// like a missing one.
		result := db.Delete(&Bookmark{}, "id = ? AND owner_id = ?", string(bookmarkID), string(ownerID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		deleted = result.RowsAffected > 0

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return deleted, nil
}

// QueryBookmarks implements port.BookmarkStore.
func (s *Store) QueryBookmarks(ctx context.Context, ownerID model.UserID) ([]model.Bookmark, error) {
	var bookmarks []*Bookmark

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Where("owner_id = ?", string(ownerID)).
			Order("created_at DESC").
			Find(&bookmarks).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedBookmarks := make([]model.Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		wrappedBookmarks = append(wrappedBookmarks, &wrappedBookmark{b})
	}

	return wrappedBookmarks, nil
}
