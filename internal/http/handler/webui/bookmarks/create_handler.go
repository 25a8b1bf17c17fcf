package bookmarks

import (
	"net/http"

	"github.com/humlebaek/marks/internal/core/service"
	httpCtx "github.com/humlebaek/marks/internal/http/context"
	"github.com/humlebaek/marks/internal/http/handler/webui/common"
	commonComp "github.com/humlebaek/marks/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) handleBookmarkCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := httpCtx.User(ctx)
	if user == nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusUnauthorized))
		return
	}

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	title := r.FormValue("title")
	url := r.FormValue("url")

	_, err := h.bookmarkManager.CreateBookmark(ctx, user.ID(), title, url)
	if err != nil {
		h.redirectWithMessage(w, r, createErrorMessage(err))
		return
	}

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/bookmarks/"))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}

func createErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return "Title and URL are required"
	case errors.Is(err, service.ErrInvalidURL):
		return "Please enter a valid URL"
	case errors.Is(err, service.ErrTitleTooLong):
		return "Title is too long"
	default:
		return "Could not save bookmark"
	}
}

func (h *Handler) redirectWithMessage(w http.ResponseWriter, r *http.Request, message string) {
	redirectURL := commonComp.BaseURL(r.Context(),
		commonComp.WithPath("/bookmarks/"),
		commonComp.WithValues("message", message),
	)

	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
