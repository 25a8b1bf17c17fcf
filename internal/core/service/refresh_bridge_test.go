package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
)

func TestRefreshBridgeRelevance(t *testing.T) {
	userID := model.NewUserID()
	otherID := model.NewUserID()

	feed := newStubFeed()
	refreshes := make(chan struct{}, 16)

	bridge := NewRefreshBridge(feed, immediateCredential("token"), userID, func(ctx context.Context) {
		refreshes <- struct{}{}
	})
	defer bridge.Close()

	done := make(chan error, 1)
	go func() {
		done <- bridge.Run(context.Background())
	}()

	waitForState(t, bridge, BridgeStateSubscribed)

	if e, g := 1, feed.SubscribeCalls(); e != g {
		t.Fatalf("feed.SubscribeCalls(): expected %d, got %d", e, g)
	}

	// Own insert is relevant
	feed.Emit(model.BookmarkEvent{Type: model.BookmarkCreated, BookmarkID: model.NewBookmarkID(), OwnerID: userID})
	expectRefreshes(t, refreshes, 1)

	// Someone else's insert is not
	feed.Emit(model.BookmarkEvent{Type: model.BookmarkCreated, BookmarkID: model.NewBookmarkID(), OwnerID: otherID})
	expectRefreshes(t, refreshes, 0)

	// Every delete refreshes, whoever owned the row
	feed.Emit(model.BookmarkEvent{Type: model.BookmarkDeleted, BookmarkID: model.NewBookmarkID(), PreviousOwnerID: otherID})
	expectRefreshes(t, refreshes, 1)

	// Own old-row owner is relevant too
	feed.Emit(model.BookmarkEvent{Type: model.BookmarkUpdated, BookmarkID: model.NewBookmarkID(), OwnerID: otherID, PreviousOwnerID: userID})
	expectRefreshes(t, refreshes, 1)

	if err := bridge.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	case <-time.After(time.Second):
		t.Fatalf("bridge did not stop after Close")
	}
}

func TestRefreshBridgeCloseBeforeAuthorizationResolves(t *testing.T) {
	feed := newStubFeed()

	release := make(chan struct{})
	credentials := func(ctx context.Context) (model.Credential, error) {
		<-release
		return model.Credential("token"), nil
	}

	bridge := NewRefreshBridge(feed, credentials, model.NewUserID(), func(ctx context.Context) {
		t.Errorf("refresh should never be triggered")
	})

	done := make(chan error, 1)
	go func() {
		done <- bridge.Run(context.Background())
	}()

	waitForState(t, bridge, BridgeStateAuthorizing)

	// Teardown races the in-flight credential fetch
	if err := bridge.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	close(release)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	case <-time.After(time.Second):
		t.Fatalf("bridge did not stop after Close")
	}

	if e, g := 0, feed.SubscribeCalls(); e != g {
		t.Errorf("feed.SubscribeCalls(): expected %d, got %d", e, g)
	}

	if e, g := BridgeStateTornDown, bridge.State(); e != g {
		t.Errorf("bridge.State(): expected %q, got %q", e, g)
	}

	// Close stays safe to invoke again
	if err := bridge.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
}

func TestRefreshBridgeVoidCredential(t *testing.T) {
	feed := newStubFeed()

	bridge := NewRefreshBridge(feed, immediateCredential(""), model.NewUserID(), func(ctx context.Context) {
		t.Errorf("refresh should never be triggered")
	})

	if err := bridge.Run(context.Background()); !errors.Is(err, port.ErrUnauthorized) {
		t.Errorf("expected error %q, got %+v", port.ErrUnauthorized, err)
	}

	if e, g := 0, feed.SubscribeCalls(); e != g {
		t.Errorf("feed.SubscribeCalls(): expected %d, got %d", e, g)
	}
}

func TestRefreshBridgeSubscriptionReleasedOnce(t *testing.T) {
	feed := newStubFeed()

	bridge := NewRefreshBridge(feed, immediateCredential("token"), model.NewUserID(), func(ctx context.Context) {})

	done := make(chan error, 1)
	go func() {
		done <- bridge.Run(context.Background())
	}()

	waitForState(t, bridge, BridgeStateSubscribed)

	if err := bridge.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	if err := bridge.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("bridge did not stop after Close")
	}

	if e, g := 1, feed.subscription.CloseCalls(); e != g {
		t.Errorf("subscription.CloseCalls(): expected %d, got %d", e, g)
	}
}

func TestRefreshBridgeStopsWithContext(t *testing.T) {
	feed := newStubFeed()

	bridge := NewRefreshBridge(feed, immediateCredential("token"), model.NewUserID(), func(ctx context.Context) {})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- bridge.Run(ctx)
	}()

	waitForState(t, bridge, BridgeStateSubscribed)

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected error %q, got %+v", context.Canceled, err)
		}
	case <-time.After(time.Second):
		t.Fatalf("bridge did not stop after context cancellation")
	}

	if e, g := BridgeStateTornDown, bridge.State(); e != g {
		t.Errorf("bridge.State(): expected %q, got %q", e, g)
	}
}

func immediateCredential(credential model.Credential) CredentialSource {
	return func(ctx context.Context) (model.Credential, error) {
		return credential, nil
	}
}

func waitForState(t *testing.T, bridge *RefreshBridge, state BridgeState) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if bridge.State() == state {
			return
		}
		time.Sleep(time.Millisecond)
	}

	t.Fatalf("bridge never reached state %q, stuck in %q", state, bridge.State())
}

func expectRefreshes(t *testing.T, refreshes chan struct{}, count int) {
	t.Helper()

	for i := 0; i < count; i++ {
		select {
		case <-refreshes:
		case <-time.After(time.Second):
			t.Fatalf("expected %d refresh(es), got %d", count, i)
		}
	}

	select {
	case <-refreshes:
		t.Fatalf("expected %d refresh(es), got at least %d", count, count+1)
	case <-time.After(50 * time.Millisecond):
	}
}

type stubFeed struct {
	mutex          sync.Mutex
	subscribeCalls int
	subscription   *stubSubscription
}

func newStubFeed() *stubFeed {
	return &stubFeed{
		subscription: &stubSubscription{
			events: make(chan model.BookmarkEvent, 16),
		},
	}
}

// Publish implements port.Feed.
func (f *stubFeed) Publish(ctx context.Context, event model.BookmarkEvent) error {
	f.subscription.events <- event
	return nil
}

// Subscribe implements port.Feed.
func (f *stubFeed) Subscribe(ctx context.Context, credential model.Credential) (port.Subscription, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.subscribeCalls++

	return f.subscription, nil
}

func (f *stubFeed) SubscribeCalls() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.subscribeCalls
}

func (f *stubFeed) Emit(event model.BookmarkEvent) {
	f.subscription.events <- event
}

var _ port.Feed = &stubFeed{}

type stubSubscription struct {
	mutex      sync.Mutex
	events     chan model.BookmarkEvent
	closeCalls int
}

// Events implements port.Subscription.
func (s *stubSubscription) Events() <-chan model.BookmarkEvent {
	return s.events
}

// Close implements port.Subscription.
func (s *stubSubscription) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.closeCalls++

	if s.closeCalls == 1 {
		close(s.events)
	}

	return nil
}

func (s *stubSubscription) CloseCalls() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.closeCalls
}

var _ port.Subscription = &stubSubscription{}
