package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/humlebaek/marks/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

func HomePage() templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loginURL := component.BaseURL(ctx, component.WithPath("/auth/oidc/login"))

		if _, err := fmt.Fprintf(w, `<section class="landing">
<h1>Marks</h1>
<p>Keep your bookmarks to yourself, on every device.</p>
<p><a href="%s">Sign in to get started</a></p>
</section>`, loginURL); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return component.Layout("Marks", content)
}
