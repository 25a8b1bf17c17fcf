package http

import (
	"net/http"
	"net/url"

	httpCtx "github.com/humlebaek/marks/internal/http/context"
)

// withRequestURLs exposes the configured base url and the requested url
// to downstream handlers and components.
func (s *Server) withRequestURLs(baseURL *url.URL, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = httpCtx.SetBaseURL(ctx, baseURL)

		currentURL := *r.URL
		currentURL.Host = r.Host
		ctx = httpCtx.SetCurrentURL(ctx, &currentURL)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
