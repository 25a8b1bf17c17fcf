package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultChannel = "marks:bookmarks"

type Broker struct {
	client  *redis.Client
	channel string
}

// NewBroker creates a feed backed by redis pub/sub on the given channel.
// An empty channel falls back to the default one.
func NewBroker(client *redis.Client, channel string) *Broker {
	if channel == "" {
		channel = defaultChannel
	}

	return &Broker{
		client:  client,
		channel: channel,
	}
}

// Publish implements port.Feed.
func (b *Broker) Publish(ctx context.Context, event model.BookmarkEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Subscribe implements port.Feed.
func (b *Broker) Subscribe(ctx context.Context, credential model.Credential) (port.Subscription, error) {
	if credential.Void() {
		return nil, errors.WithStack(port.ErrUnauthorized)
	}

	pubsub := b.client.Subscribe(ctx, b.channel)

	// Force the subscription to be established before returning so
	// that no event published after Subscribe is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		if closeErr := pubsub.Close(); closeErr != nil {
			slog.WarnContext(ctx, "could not close redis subscription", slogx.Error(errors.WithStack(closeErr)))
		}

		return nil, errors.WithStack(err)
	}

	s := &subscription{
		pubsub: pubsub,
		events: make(chan model.BookmarkEvent, eventBufferSize),
	}

	go s.forward(pubsub.Channel())

	return s, nil
}

const eventBufferSize = 8

type subscription struct {
	pubsub    *redis.PubSub
	events    chan model.BookmarkEvent
	closeOnce sync.Once
	closeErr  error
}

// Events implements port.Subscription.
func (s *subscription) Events() <-chan model.BookmarkEvent {
	return s.events
}

// Close implements port.Subscription.
func (s *subscription) Close() error {
	s.closeOnce.Do(func() {
		// Closing the pubsub closes its message channel, which makes
		// forward return and close the events channel.
		s.closeErr = errors.WithStack(s.pubsub.Close())
	})

	return s.closeErr
}

func (s *subscription) forward(messages <-chan *redis.Message) {
	defer close(s.events)

	for message := range messages {
		var event model.BookmarkEvent
		if err := json.Unmarshal([]byte(message.Payload), &event); err != nil {
			slog.Warn("could not unmarshal bookmark event", slogx.Error(errors.WithStack(err)))
			continue
		}

		select {
		case s.events <- event:
		default:
			slog.Warn("dropping bookmark event, subscriber too slow")
		}
	}
}

var (
	_ port.Feed         = &Broker{}
	_ port.Subscription = &subscription{}
)
