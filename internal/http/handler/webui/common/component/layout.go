package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

// Layout wraps the given content in the shared page skeleton.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		stylesheet := BaseURL(ctx, WithPath("/assets/style.css"))

		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="%s">
</head>
<body>
<main class="container">`, templ.EscapeString(title), stylesheet)
		if err != nil {
			return errors.WithStack(err)
		}

		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return errors.WithStack(err)
			}
		}

		if _, err := io.WriteString(w, `</main>
</body>
</html>`); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}
