package bookmarks

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/humlebaek/marks/internal/http/context"
	"github.com/humlebaek/marks/internal/http/handler/webui/bookmarks/component"
	"github.com/humlebaek/marks/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) getListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := httpCtx.User(ctx)
	if user == nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusUnauthorized))
		return
	}

	vmodel := component.ListPageVModel{
		DisplayName: user.DisplayName(),
		Message:     r.URL.Query().Get("message"),
	}

	bookmarks, err := h.bookmarkManager.ListBookmarks(ctx, user.ID())
	if err != nil {
		// The page stays useful on a degraded store: the form still
		// works and the live refresh stream reloads it on recovery.
		slog.ErrorContext(ctx, "could not list bookmarks", slogx.Error(errors.WithStack(err)))
		vmodel.LoadFailed = true
	} else {
		vmodel.Bookmarks = bookmarks
	}

	listPage := component.ListPage(vmodel)

	templ.Handler(listPage).ServeHTTP(w, r)
}
