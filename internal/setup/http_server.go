package setup

import (
	"context"

	"github.com/humlebaek/marks/internal/config"
	"github.com/humlebaek/marks/internal/http"
	"github.com/humlebaek/marks/internal/http/handler/metrics"
	"github.com/humlebaek/marks/internal/http/handler/webui"
	"github.com/humlebaek/marks/internal/http/handler/webui/common"
	"github.com/humlebaek/marks/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	oidcHandler, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	authnMiddleware := authn.Middleware(oidcHandler)

	bridgeMiddleware, err := getBridgeMiddlewareFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure bridge middleware from config")
	}

	bookmarkManager, err := getBookmarkManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure bookmark manager from config")
	}

	feed, err := getFeedFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure feed from config")
	}

	assets := common.NewHandler()

	webui := webui.NewHandler(bookmarkManager, feed)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/assets/", assets),
		http.WithMount("/auth/", oidcHandler),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", authnMiddleware(bridgeMiddleware(webui))),
	}

	// Create HTTP server

	server := http.NewServer(options...)

	return server, nil
}
