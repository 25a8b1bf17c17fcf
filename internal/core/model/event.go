package model

type BookmarkEventType string

const (
	BookmarkCreated BookmarkEventType = "created"
	BookmarkUpdated BookmarkEventType = "updated"
	BookmarkDeleted BookmarkEventType = "deleted"
)

// BookmarkEvent is emitted on the change feed after a bookmark row is
// committed. OwnerID carries the new row's owner, PreviousOwnerID the old
// row's owner; deletes only have the latter, inserts only the former.
type BookmarkEvent struct {
	Type            BookmarkEventType `json:"type"`
	BookmarkID      BookmarkID        `json:"bookmarkId"`
	OwnerID         UserID            `json:"ownerId,omitempty"`
	PreviousOwnerID UserID            `json:"previousOwnerId,omitempty"`
}
