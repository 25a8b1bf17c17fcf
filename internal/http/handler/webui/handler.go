package webui

import (
	"net/http"
	"strings"

	"github.com/humlebaek/marks/internal/core/port"
	"github.com/humlebaek/marks/internal/core/service"
	"github.com/humlebaek/marks/internal/http/handler/webui/bookmarks"
	"github.com/humlebaek/marks/internal/http/handler/webui/home"
	"github.com/humlebaek/marks/internal/http/middleware/authz"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(bookmarkManager *service.BookmarkManager, feed port.Feed) *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	signedIn := authz.Middleware(http.HandlerFunc(redirectToLanding), authz.IsAuthenticated)

	mount(h.mux, "/", home.NewHandler())
	mount(h.mux, "/bookmarks/", signedIn(bookmarks.NewHandler(bookmarkManager, feed)))

	return h
}

// Unauthenticated requests land on the public home view, never on a raw
// error page.
func redirectToLanding(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
