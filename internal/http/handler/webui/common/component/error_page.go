package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

type LinkItem struct {
	Label string
	URL   string
}

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="error">
<h1>Something went wrong</h1>
<p>%s</p>`, templ.EscapeString(vmodel.Message)); err != nil {
			return errors.WithStack(err)
		}

		links := vmodel.Links
		if len(links) == 0 {
			links = []LinkItem{{Label: "Back to home", URL: string(BaseURL(ctx, WithPath("/")))}}
		}

		for _, link := range links {
			if _, err := fmt.Fprintf(w, `
<p><a href="%s">%s</a></p>`, templ.EscapeString(link.URL), templ.EscapeString(link.Label)); err != nil {
				return errors.WithStack(err)
			}
		}

		if _, err := io.WriteString(w, `
</section>`); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return Layout("Error", content)
}
