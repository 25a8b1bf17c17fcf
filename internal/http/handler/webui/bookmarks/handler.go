package bookmarks

import (
	"net/http"

	"github.com/humlebaek/marks/internal/core/port"
	"github.com/humlebaek/marks/internal/core/service"
)

type Handler struct {
	mux             *http.ServeMux
	bookmarkManager *service.BookmarkManager
	feed            port.Feed
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(bookmarkManager *service.BookmarkManager, feed port.Feed) *Handler {
	h := &Handler{
		mux:             http.NewServeMux(),
		bookmarkManager: bookmarkManager,
		feed:            feed,
	}

	h.mux.HandleFunc("GET /{$}", h.getListPage)
	h.mux.HandleFunc("POST /{$}", h.handleBookmarkCreate)
	h.mux.HandleFunc("POST /{bookmarkID}/delete", h.handleBookmarkDelete)
	h.mux.HandleFunc("GET /events", h.handleEvents)

	return h
}

var _ http.Handler = &Handler{}
