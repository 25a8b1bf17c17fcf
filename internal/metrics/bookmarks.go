package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameCreatedBookmarks = "created_bookmarks"
	NameDeletedBookmarks = "deleted_bookmarks"
)

var CreatedBookmarks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameCreatedBookmarks,
		Help:      "Total created bookmarks",
		Namespace: Namespace,
	},
)

var DeletedBookmarks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameDeletedBookmarks,
		Help:      "Total deleted bookmarks",
		Namespace: Namespace,
	},
)
