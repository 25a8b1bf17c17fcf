package port

import (
	"context"

	"github.com/humlebaek/marks/internal/core/model"
)

type UserStore interface {
	// FindOrCreateUser searches for a User in the store by its
	// provider/subject unique tuple and returns it if it exists, or creates a
	// new one otherwise
	FindOrCreateUser(ctx context.Context, provider, subject string) (model.User, error)

	// SaveUser saves a user in the store
	SaveUser(ctx context.Context, user model.User) error
}
