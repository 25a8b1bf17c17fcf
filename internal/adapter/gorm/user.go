package gorm

import (
	"time"

	"github.com/humlebaek/marks/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Subject  string `gorm:"index:user_identity_index,unique"`
	Provider string `gorm:"index:user_identity_index,unique"`

	DisplayName string
	Email       string

	Bookmarks []*Bookmark `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Provider implements model.User.
func (w *wrappedUser) Provider() string {
	return w.u.Provider
}

// Subject implements model.User.
func (w *wrappedUser) Subject() string {
	return w.u.Subject
}

// Email implements model.User.
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// DisplayName implements model.User.
func (w *wrappedUser) DisplayName() string {
	return w.u.DisplayName
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User) *User {
	return &User{
		ID:          string(u.ID()),
		Subject:     u.Subject(),
		Provider:    u.Provider(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
	}
}
