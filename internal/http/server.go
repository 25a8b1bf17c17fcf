package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)

	return &Server{
		opts: opts,
	}
}

// Run serves the configured mounts until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		mount(mux, prefix, handler)
	}

	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return errors.Wrap(err, "could not parse base url")
	}

	handler := s.withRequestURLs(baseURL, mux)
	handler = sloghttp.New(slog.Default())(handler)

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("could not shutdown server", slogx.Error(errors.WithStack(err)))
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}
