package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameFeedSubscribers = "feed_subscribers"
	NameRefreshEvents   = "refresh_events"
)

var FeedSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name:      NameFeedSubscribers,
		Help:      "Currently active feed subscribers",
		Namespace: Namespace,
	},
)

var RefreshEvents = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameRefreshEvents,
		Help:      "Total refresh events delivered to live sessions",
		Namespace: Namespace,
	},
)
