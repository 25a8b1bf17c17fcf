package home

import (
	"net/http"

	"github.com/a-h/templ"
	httpCtx "github.com/humlebaek/marks/internal/http/context"
	"github.com/humlebaek/marks/internal/http/handler/webui/home/component"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler() *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /{$}", h.getHomePage)

	return h
}

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if user := httpCtx.User(ctx); user != nil {
		http.Redirect(w, r, "/bookmarks/", http.StatusSeeOther)
		return
	}

	homePage := component.HomePage()

	templ.Handler(homePage).ServeHTTP(w, r)
}

var _ http.Handler = &Handler{}
