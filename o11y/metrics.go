package o11y

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "helloadp"

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	UnknownModTimes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_unknown_mtime_total",
		Help:      "Documents whose backing file could not be stat'ed.",
	})

	DocsPages = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "content_pages",
		Help:      "Indexed documentation pages per language.",
	}, []string{"lang"})

	ContentReloads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_reloads_total",
		Help:      "Reloads of the documentation index.",
	})

	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Reader comments stored.",
	})
)
