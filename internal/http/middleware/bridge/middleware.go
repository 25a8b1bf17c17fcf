package bridge

import (
	"log/slog"
	"net/http"

	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/core/port"
	httpCtx "github.com/humlebaek/marks/internal/http/context"
	"github.com/humlebaek/marks/internal/http/handler/webui/common"
	"github.com/humlebaek/marks/internal/http/middleware/authn"
	"github.com/humlebaek/marks/internal/log"
)

// Middleware maps the authenticated identity to a stored user and
// exposes it to downstream handlers. Requests without an authenticated
// identity pass through anonymously.
func Middleware(userStore port.UserStore) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authnUser := authn.ContextUser(ctx)
			if authnUser == nil {
				h.ServeHTTP(w, r)
				return
			}

			user, err := userStore.FindOrCreateUser(ctx, authnUser.Provider, authnUser.Subject)
			if err != nil {
				common.HandleError(w, r, err)
				return
			}

			changed := user.DisplayName() != authnUser.DisplayName ||
				user.Email() != authnUser.Email

			if changed {
				updatable := model.CopyUser(user)
				updatable.SetDisplayName(authnUser.DisplayName)
				updatable.SetEmail(authnUser.Email)

				if err := userStore.SaveUser(ctx, updatable); err != nil {
					common.HandleError(w, r, err)
					return
				}

				user = updatable
			}

			ctx = httpCtx.SetUser(ctx, user)
			ctx = log.WithAttrs(ctx, slog.String("user", model.UserString(user)))

			r = r.WithContext(ctx)

			h.ServeHTTP(w, r)
		}

		return fn
	}
}
