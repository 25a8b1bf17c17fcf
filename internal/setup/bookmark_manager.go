package setup

import (
	"context"

	"github.com/humlebaek/marks/internal/config"
	"github.com/humlebaek/marks/internal/core/service"
	"github.com/pkg/errors"
)

var getBookmarkManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.BookmarkManager, error) {
	store, err := getBookmarkStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	feed, err := getFeedFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewBookmarkManager(store, feed), nil
})
