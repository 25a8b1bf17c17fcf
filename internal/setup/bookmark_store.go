package setup

import (
	"context"

	"github.com/humlebaek/marks/internal/config"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
)

var getBookmarkStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.BookmarkStore, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
})
