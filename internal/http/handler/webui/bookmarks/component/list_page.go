package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/humlebaek/marks/internal/core/model"
	"github.com/humlebaek/marks/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

type ListPageVModel struct {
	DisplayName string
	Message     string
	Bookmarks   []model.Bookmark
	LoadFailed  bool
}

func ListPage(vmodel ListPageVModel) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		logoutURL := component.BaseURL(ctx, component.WithPath("/auth/oidc/logout"))
		eventsURL := component.BaseURL(ctx, component.WithPath("/bookmarks/events"))
		scriptURL := component.BaseURL(ctx, component.WithPath("/assets/live-refresh.js"))

		if _, err := fmt.Fprintf(w, `<header class="site-header">
<h1>My bookmarks</h1>
<span class="account">%s &middot; <a href="%s">Sign out</a></span>
</header>
<div data-live-refresh="%s">`, templ.EscapeString(vmodel.DisplayName), logoutURL, eventsURL); err != nil {
			return errors.WithStack(err)
		}

		if vmodel.Message != "" {
			if _, err := fmt.Fprintf(w, `
<p class="message error">%s</p>`, templ.EscapeString(vmodel.Message)); err != nil {
				return errors.WithStack(err)
			}
		}

		if err := bookmarkForm(ctx, w); err != nil {
			return errors.WithStack(err)
		}

		if err := bookmarkList(ctx, w, vmodel); err != nil {
			return errors.WithStack(err)
		}

		if _, err := fmt.Fprintf(w, `
</div>
<script src="%s"></script>`, scriptURL); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return component.Layout("My bookmarks", content)
}

func bookmarkForm(ctx context.Context, w io.Writer) error {
	formURL := component.BaseURL(ctx, component.WithPath("/bookmarks/"))

	_, err := fmt.Fprintf(w, `
<form class="bookmark-form" method="post" action="%s">
<input type="text" name="title" placeholder="Title" maxlength="120" required>
<input type="url" name="url" placeholder="https://..." required>
<button type="submit" class="primary">Add</button>
</form>`, formURL)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func bookmarkList(ctx context.Context, w io.Writer, vmodel ListPageVModel) error {
	if vmodel.LoadFailed {
		if _, err := io.WriteString(w, `
<p class="placeholder">Your bookmarks could not be loaded. They will reappear automatically.</p>`); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	if len(vmodel.Bookmarks) == 0 {
		if _, err := io.WriteString(w, `
<p class="empty-state">No bookmarks yet. Add your first one above.</p>`); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	if _, err := io.WriteString(w, `
<ul class="bookmark-list">`); err != nil {
		return errors.WithStack(err)
	}

	for _, bookmark := range vmodel.Bookmarks {
		deleteURL := component.BaseURL(ctx, component.WithPath(fmt.Sprintf("/bookmarks/%s/delete", bookmark.ID())))

		if _, err := fmt.Fprintf(w, `
<li>
<a href="%s" rel="noopener noreferrer" target="_blank">%s</a>
<span class="added-at">%s</span>
<form method="post" action="%s">
<button type="submit" class="danger">Delete</button>
</form>
</li>`,
			templ.EscapeString(bookmark.URL()),
			templ.EscapeString(bookmark.Title()),
			bookmark.CreatedAt().Format("Jan 2, 2006"),
			deleteURL,
		); err != nil {
			return errors.WithStack(err)
		}
	}

	if _, err := io.WriteString(w, `
</ul>`); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
