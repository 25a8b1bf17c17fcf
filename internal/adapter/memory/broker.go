package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
)

const subscriptionBuffer = 8

// Broker is an in-process change feed, suitable for single-node deployments
// and tests. Events are fanned out to every active subscription; a
// subscription too slow to drain its buffer drops events rather than
// blocking publishers.
type Broker struct {
	mutex       sync.RWMutex
	subscribers map[int]*subscription
	nextID      int
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[int]*subscription),
	}
}

// Publish implements port.Feed.
func (b *Broker) Publish(ctx context.Context, event model.BookmarkEvent) error {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	for _, s := range b.subscribers {
		select {
		case s.events <- event:
		default:
			slog.WarnContext(ctx, "dropping event for slow subscriber", slog.String("bookmarkID", string(event.BookmarkID)))
		}
	}

	return nil
}

// Subscribe implements port.Feed.
func (b *Broker) Subscribe(ctx context.Context, credential model.Credential) (port.Subscription, error) {
	if credential.Void() {
		return nil, errors.WithStack(port.ErrUnauthorized)
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.nextID++

	s := &subscription{
		broker: b,
		id:     b.nextID,
		events: make(chan model.BookmarkEvent, subscriptionBuffer),
	}

	b.subscribers[s.id] = s

	return s, nil
}

func (b *Broker) remove(id int) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	delete(b.subscribers, id)
}

var _ port.Feed = &Broker{}

type subscription struct {
	broker    *Broker
	id        int
	events    chan model.BookmarkEvent
	closeOnce sync.Once
}

// Events implements port.Subscription.
func (s *subscription) Events() <-chan model.BookmarkEvent {
	return s.events
}

// Close implements port.Subscription.
func (s *subscription) Close() error {
	s.closeOnce.Do(func() {
		s.broker.remove(s.id)
		close(s.events)
	})

	return nil
}

var _ port.Subscription = &subscription{}
