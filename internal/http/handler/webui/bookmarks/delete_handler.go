package bookmarks

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/humlebaek/marks/internal/core/model"
	httpCtx "github.com/humlebaek/marks/internal/http/context"
	"github.com/humlebaek/marks/internal/http/handler/webui/common"
	commonComp "github.com/humlebaek/marks/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func (h *Handler) handleBookmarkDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := httpCtx.User(ctx)
	if user == nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusUnauthorized))
		return
	}

	bookmarkID := model.BookmarkID(r.PathValue("bookmarkID"))

	if err := h.bookmarkManager.DeleteBookmark(ctx, user.ID(), bookmarkID); err != nil {
		slog.ErrorContext(ctx, "could not delete bookmark",
			slog.String("bookmark_id", string(bookmarkID)),
			slogx.Error(errors.WithStack(err)))

		h.redirectWithMessage(w, r, "Could not delete bookmark")
		return
	}

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/bookmarks/"))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
