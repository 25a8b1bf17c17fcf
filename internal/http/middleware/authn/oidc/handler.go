package oidc

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/humlebaek/marks/internal/http/middleware/authn/oidc/component"
)

type Handler struct {
	mux         *http.ServeMux
	sessions    sessions.Store
	sessionName string
	providers   []component.Provider
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:         http.NewServeMux(),
		sessions:    sessionStore,
		sessionName: opts.SessionName,
		providers:   opts.Providers,
	}

	h.mux.HandleFunc("GET /oidc/login", h.getLoginPage)
	h.mux.HandleFunc("GET /oidc/logout", h.handleLogout)
	h.mux.HandleFunc("GET /oidc/providers/{provider}", h.handleProvider)
	h.mux.HandleFunc("GET /oidc/providers/{provider}/callback", h.handleProviderCallback)
	h.mux.HandleFunc("GET /oidc/providers/{provider}/logout", h.handleProviderLogout)

	return h
}

var _ http.Handler = &Handler{}
