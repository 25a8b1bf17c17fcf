package service

import (
	"context"
	"sync"

	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
)

type BridgeState string

const (
	BridgeStateUninitialized BridgeState = "uninitialized"
	BridgeStateAuthorizing   BridgeState = "authorizing"
	BridgeStateSubscribed    BridgeState = "subscribed"
	BridgeStateTornDown      BridgeState = "torn_down"
)

var ErrBridgeAlreadyRan = errors.New("bridge already ran")

// CredentialSource resolves the current session's access credential. It may
// block; the bridge re-checks its cancellation flag once it returns.
type CredentialSource func(ctx context.Context) (model.Credential, error)

// RefreshBridge binds one feed subscription to one live session. It
// authorizes with the session credential before subscribing, filters
// incoming events for relevance to its user, and invokes the refresh
// callback once per relevant event. Close tears it down at any point of the
// lifecycle, including while the credential is still being resolved.
type RefreshBridge struct {
	feed        port.Feed
	credentials CredentialSource
	userID      model.UserID
	refresh     func(ctx context.Context)

	mutex        sync.Mutex
	state        BridgeState
	cancelled    bool
	subscription port.Subscription
}

func NewRefreshBridge(feed port.Feed, credentials CredentialSource, userID model.UserID, refresh func(ctx context.Context)) *RefreshBridge {
	return &RefreshBridge{
		feed:        feed,
		credentials: credentials,
		userID:      userID,
		refresh:     refresh,
		state:       BridgeStateUninitialized,
	}
}

func (b *RefreshBridge) State() BridgeState {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.state
}

// Run drives the bridge until the context is cancelled, the subscription is
// closed under it, or Close is called. A failed authorization or
// subscription attempt is returned once; there is no retry.
func (b *RefreshBridge) Run(ctx context.Context) error {
	b.mutex.Lock()
	if b.cancelled {
		b.mutex.Unlock()
		return nil
	}
	if b.state != BridgeStateUninitialized {
		b.mutex.Unlock()
		return errors.WithStack(ErrBridgeAlreadyRan)
	}
	b.state = BridgeStateAuthorizing
	b.mutex.Unlock()

	credential, err := b.credentials(ctx)
	if err != nil {
		b.Close()
		return errors.WithStack(err)
	}

	// The session may have been torn down while the credential was being
	// resolved; in that case the continuation is a no-op and no subscription
	// is ever attempted.
	if b.isCancelled() {
		return nil
	}

	if credential.Void() {
		b.Close()
		return errors.WithStack(port.ErrUnauthorized)
	}

	subscription, err := b.feed.Subscribe(ctx, credential)
	if err != nil {
		b.Close()
		return errors.WithStack(err)
	}

	b.mutex.Lock()
	if b.cancelled {
		b.mutex.Unlock()
		subscription.Close()
		return nil
	}
	b.subscription = subscription
	b.state = BridgeStateSubscribed
	b.mutex.Unlock()

	for {
		select {
		case <-ctx.Done():
			b.Close()
			return errors.WithStack(ctx.Err())

		case event, ok := <-subscription.Events():
			if !ok {
				b.Close()
				return nil
			}

			if !b.relevant(event) {
				continue
			}

			b.refresh(ctx)
		}
	}
}

// relevant applies a deliberately broad rule: every delete triggers a
// refresh, whoever owned the row. The re-fetch is owner-scoped so the extra
// round trip is wasteful but harmless.
func (b *RefreshBridge) relevant(event model.BookmarkEvent) bool {
	return event.OwnerID == b.userID ||
		event.PreviousOwnerID == b.userID ||
		event.Type == model.BookmarkDeleted
}

// Close is idempotent and safe to call from any state, including before the
// authorization step has resolved. The subscription handle, if any was
// established, is released exactly once.
func (b *RefreshBridge) Close() error {
	b.mutex.Lock()
	b.cancelled = true
	b.state = BridgeStateTornDown
	subscription := b.subscription
	b.subscription = nil
	b.mutex.Unlock()

	if subscription != nil {
		if err := subscription.Close(); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func (b *RefreshBridge) isCancelled() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.cancelled
}
