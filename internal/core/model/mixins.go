package model

import (
	"time"
)

type WithID[T ~string] interface {
	ID() T
}

type WithOwner interface {
	Owner() UserID
}

type WithLifecycle interface {
	CreatedAt() time.Time
}
