package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func newBrokerForTest(t *testing.T) *Broker {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewBroker(client, "marks:test")
}

func TestBrokerPublishSubscribe(t *testing.T) {
	ctx := context.Background()
	broker := newBrokerForTest(t)

	first, err := broker.Subscribe(ctx, model.Credential("token-a"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	defer first.Close()

	second, err := broker.Subscribe(ctx, model.Credential("token-b"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	defer second.Close()

	event := model.BookmarkEvent{
		Type:       model.BookmarkDeleted,
		BookmarkID: model.NewBookmarkID(),
		OwnerID:    model.NewUserID(),
	}
	event.PreviousOwnerID = event.OwnerID

	if err := broker.Publish(ctx, event); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, s := range []port.Subscription{first, second} {
		select {
		case received := <-s.Events():
			if e, g := event.Type, received.Type; e != g {
				t.Errorf("received.Type: expected %q, got %q", e, g)
			}

			if e, g := event.BookmarkID, received.BookmarkID; e != g {
				t.Errorf("received.BookmarkID: expected %q, got %q", e, g)
			}

			if e, g := event.PreviousOwnerID, received.PreviousOwnerID; e != g {
				t.Errorf("received.PreviousOwnerID: expected %q, got %q", e, g)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("subscription never received the event")
		}
	}
}

func TestBrokerRejectsVoidCredential(t *testing.T) {
	ctx := context.Background()
	broker := newBrokerForTest(t)

	if _, err := broker.Subscribe(ctx, model.Credential("")); !errors.Is(err, port.ErrUnauthorized) {
		t.Errorf("expected error %q, got %+v", port.ErrUnauthorized, err)
	}
}

func TestBrokerSubscriptionClose(t *testing.T) {
	ctx := context.Background()
	broker := newBrokerForTest(t)

	s, err := broker.Subscribe(ctx, model.Credential("token"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := s.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// idempotent
	if err := s.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	select {
	case _, ok := <-s.Events():
		if ok {
			t.Errorf("events channel should be closed")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("events channel never closed")
	}
}

func TestBrokerSkipsMalformedPayloads(t *testing.T) {
	ctx := context.Background()
	broker := newBrokerForTest(t)

	s, err := broker.Subscribe(ctx, model.Credential("token"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	defer s.Close()

	if err := broker.client.Publish(ctx, broker.channel, "{not json").Err(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	event := model.BookmarkEvent{
		Type:       model.BookmarkCreated,
		BookmarkID: model.NewBookmarkID(),
		OwnerID:    model.NewUserID(),
	}

	if err := broker.Publish(ctx, event); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	select {
	case received := <-s.Events():
		if e, g := event.BookmarkID, received.BookmarkID; e != g {
			t.Errorf("received.BookmarkID: expected %q, got %q", e, g)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("subscription never received the well-formed event")
	}
}
