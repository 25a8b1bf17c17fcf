package port

import (
	"context"

	"github.com/humlebaek/marks/internal/core/model"
)

// Feed is the change notification transport for the bookmarks table. Every
// committed mutation is published once; each subscriber receives every
// published event, whoever owns the affected row. Relevance filtering is the
// subscriber's business.
type Feed interface {
	// Publish emits an event to all active subscriptions
	Publish(ctx context.Context, event model.BookmarkEvent) error

	// Subscribe authorizes the given credential then opens a new
	// subscription. A void credential is rejected with ErrUnauthorized and no
	// subscription is created
	Subscribe(ctx context.Context, credential model.Credential) (Subscription, error)
}

// Subscription is an active attachment to the Feed. Close is idempotent and
// closes the Events channel.
type Subscription interface {
	Events() <-chan model.BookmarkEvent
	Close() error
}
