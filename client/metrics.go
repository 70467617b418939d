package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helpdesk_client",
			Name:      "requests_total",
			Help:      "HTTP requests issued against the helpdesk API.",
		},
		[]string{"method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helpdesk_client",
			Name:      "request_failures_total",
			Help:      "Requests that ended in a transport or API error.",
		},
		[]string{"method"},
	)
)
