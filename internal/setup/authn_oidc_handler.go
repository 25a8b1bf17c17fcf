package setup

import (
	"context"
	"fmt"

	"github.com/humlebaek/marks/internal/config"
	"github.com/humlebaek/marks/internal/http/middleware/authn/oidc"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

func getOIDCAuthnHandlerFromConfig(ctx context.Context, conf *config.Config) (*oidc.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Configure providers

	gothProviders := make([]goth.Provider, 0)
	providers := make([]oidc.Provider, 0)

	if conf.HTTP.Authn.Providers.Google.Key != "" && conf.HTTP.Authn.Providers.Google.Secret != "" {
		googleProvider := google.New(
			conf.HTTP.Authn.Providers.Google.Key,
			conf.HTTP.Authn.Providers.Google.Secret,
			fmt.Sprintf("%s/auth/oidc/providers/google/callback", conf.HTTP.BaseURL),
			conf.HTTP.Authn.Providers.Google.Scopes...,
		)

		gothProviders = append(gothProviders, googleProvider)

		providers = append(providers, oidc.Provider{
			ID:    googleProvider.Name(),
			Label: "Google",
			Icon:  "fa-google",
		})
	}

	if conf.HTTP.Authn.Providers.Github.Key != "" && conf.HTTP.Authn.Providers.Github.Secret != "" {
		githubProvider := github.New(
			conf.HTTP.Authn.Providers.Github.Key,
			conf.HTTP.Authn.Providers.Github.Secret,
			fmt.Sprintf("%s/auth/oidc/providers/github/callback", conf.HTTP.BaseURL),
			conf.HTTP.Authn.Providers.Github.Scopes...,
		)

		gothProviders = append(gothProviders, githubProvider)

		providers = append(providers, oidc.Provider{
			ID:    githubProvider.Name(),
			Label: "Github",
			Icon:  "fa-github",
		})
	}

	if conf.HTTP.Authn.Providers.OIDC.Key != "" && conf.HTTP.Authn.Providers.OIDC.Secret != "" {
		oidcProvider, err := openidConnect.New(
			conf.HTTP.Authn.Providers.OIDC.Key,
			conf.HTTP.Authn.Providers.OIDC.Secret,
			fmt.Sprintf("%s/auth/oidc/providers/openid-connect/callback", conf.HTTP.BaseURL),
			conf.HTTP.Authn.Providers.OIDC.DiscoveryURL,
			conf.HTTP.Authn.Providers.OIDC.Scopes...,
		)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure oidc provider")
		}

		gothProviders = append(gothProviders, oidcProvider)

		providers = append(providers, oidc.Provider{
			ID:    oidcProvider.Name(),
			Label: conf.HTTP.Authn.Providers.OIDC.Label,
			Icon:  conf.HTTP.Authn.Providers.OIDC.Icon,
		})
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	opts := []oidc.OptionFunc{
		oidc.WithProviders(providers...),
	}

	handler := oidc.NewHandler(
		sessionStore,
		opts...,
	)

	return handler, nil
}
