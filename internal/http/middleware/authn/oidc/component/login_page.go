package component

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/humlebaek/marks/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

type Provider struct {
	ID    string
	Label string
	Icon  string
}

type LoginPageVModel struct {
	Providers []Provider
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="login">
<h1>Sign in</h1>
<div class="providers">`); err != nil {
			return errors.WithStack(err)
		}

		for _, provider := range vmodel.Providers {
			providerURL := component.BaseURL(ctx, component.WithPath(fmt.Sprintf("/auth/oidc/providers/%s", provider.ID)))

			if _, err := fmt.Fprintf(w, `
<a href="%s"><i class="fa-brands %s"></i> Continue with %s</a>`, providerURL, templ.EscapeString(provider.Icon), templ.EscapeString(provider.Label)); err != nil {
				return errors.WithStack(err)
			}
		}

		if _, err := io.WriteString(w, `
</div>
</section>`); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	return component.Layout("Sign in", content)
}
