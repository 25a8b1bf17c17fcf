package memory

import (
	"net/url"

	"github.com/humlebaek/marks/internal/core/port"
	"github.com/humlebaek/marks/internal/setup"
)

func init() {
	setup.Feed.Register("memory", func(u *url.URL) (port.Feed, error) {
		return NewBroker(), nil
	})
}
