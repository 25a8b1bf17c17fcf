package bookmarks

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/service"
	httpCtx "github.com/humlebaek/marks/internal/http/context"
	"github.com/humlebaek/marks/internal/http/middleware/authn"
	"github.com/humlebaek/marks/internal/metrics"
	"github.com/pkg/errors"
)

const heartbeatInterval = 30 * time.Second

// handleEvents streams a server-sent "refresh" event to the open page
// whenever one of the user's bookmarks changes.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := httpCtx.User(ctx)
	if user == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	stream := &sseWriter{w: w, flusher: flusher}

	if err := stream.comment("connected"); err != nil {
		return
	}

	metrics.FeedSubscribers.Inc()
	defer metrics.FeedSubscribers.Dec()

	bridge := service.NewRefreshBridge(h.feed, credentialSource(ctx), user.ID(), func(ctx context.Context) {
		metrics.RefreshEvents.Inc()

		if err := stream.event("refresh"); err != nil {
			slog.DebugContext(ctx, "could not write refresh event", slogx.Error(errors.WithStack(err)))
		}
	})
	done := make(chan struct{})

	go func() {
		defer close(done)

		if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.ErrorContext(ctx, "could not run refresh bridge", slogx.Error(errors.WithStack(err)))
		}
	}()

	// The handler must not return while the bridge can still invoke the
	// refresh callback on this response. Close unblocks the bridge loop by
	// releasing the subscription; waiting on done is what makes the last
	// in-flight write land before ServeHTTP returns.
	defer func() {
		bridge.Close()
		<-done
	}()

	// Heartbeats keep intermediaries from closing an otherwise idle
	// stream, and detect a gone client between events.
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	running := done

	for {
		select {
		case <-ctx.Done():
			return

		case <-running:
			// The stream stays open on a bridge failure so the client
			// does not enter a reconnect loop; it just stops refreshing.
			running = nil

		case <-ticker.C:
			if err := stream.comment("ping"); err != nil {
				return
			}
		}
	}
}

// credentialSource exposes the session's access token to the bridge.
func credentialSource(ctx context.Context) service.CredentialSource {
	authnUser := authn.ContextUser(ctx)

	return func(ctx context.Context) (model.Credential, error) {
		if authnUser == nil {
			return model.Credential(""), nil
		}

		return model.Credential(authnUser.AccessToken), nil
	}
}

// sseWriter serializes writes to the stream: refresh events come from the
// bridge goroutine while heartbeats come from the handler goroutine.
type sseWriter struct {
	mutex   sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
}

func (s *sseWriter) event(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: {}\n\n", name); err != nil {
		return errors.WithStack(err)
	}

	s.flusher.Flush()

	return nil
}

func (s *sseWriter) comment(text string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return errors.WithStack(err)
	}

	s.flusher.Flush()

	return nil
}
