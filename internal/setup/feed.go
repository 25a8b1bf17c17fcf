package setup

import (
	"context"

	"github.com/humlebaek/marks/internal/config"
	"github.com/humlebaek/marks/internal/core/port"
	"github.com/pkg/errors"
)

// Feed adapters register themselves by DSN scheme, see
// internal/adapter/memory and internal/adapter/redis.
var Feed = NewRegistry[port.Feed]()

var getFeedFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Feed, error) {
	feed, err := Feed.From(conf.Feed.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "could not retrieve feed for dsn '%s'", conf.Feed.DSN)
	}

	return feed, nil
})
