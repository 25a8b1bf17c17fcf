package redis

import (
	"net/url"

	"github.com/humlebaek/marks/internal/core/port"
	"github.com/humlebaek/marks/internal/setup"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func init() {
	setup.Feed.Register("redis", func(dsn *url.URL) (port.Feed, error) {
		// The channel is ours, everything else belongs to go-redis.
		query := dsn.Query()
		channel := query.Get("channel")
		query.Del("channel")

		dsn.RawQuery = query.Encode()

		opts, err := redis.ParseURL(dsn.String())
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return NewBroker(redis.NewClient(opts), channel), nil
	})
}
