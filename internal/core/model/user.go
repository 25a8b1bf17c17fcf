package model

import (
	"fmt"

	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]

	Provider() string
	Subject() string
	Email() string
	DisplayName() string
}

type BaseUser struct {
	id          UserID
	provider    string
	subject     string
	email       string
	displayName string
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Provider implements User.
func (u *BaseUser) Provider() string {
	return u.provider
}

// Subject implements User.
func (u *BaseUser) Subject() string {
	return u.subject
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// DisplayName implements User.
func (u *BaseUser) DisplayName() string {
	return u.displayName
}

func (u *BaseUser) SetEmail(email string) {
	u.email = email
}

func (u *BaseUser) SetDisplayName(displayName string) {
	u.displayName = displayName
}

var _ User = &BaseUser{}

func NewUser(provider, subject, email, displayName string) *BaseUser {
	return &BaseUser{
		id:          NewUserID(),
		provider:    provider,
		subject:     subject,
		email:       email,
		displayName: displayName,
	}
}

func CopyUser(user User) *BaseUser {
	return &BaseUser{
		id:          user.ID(),
		provider:    user.Provider(),
		subject:     user.Subject(),
		email:       user.Email(),
		displayName: user.DisplayName(),
	}
}

func UserString(user User) string {
	return fmt.Sprintf("%s/%s", user.Provider(), user.Subject())
}
