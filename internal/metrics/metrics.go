// Package metrics collects Prometheus metrics for the HTTP API and the
// story/vote domain.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
)

const namespace = "ivehadworse"

// Collector records request and domain metrics.
type Collector struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	accounts        *prometheus.CounterVec
	storiesPosted   prometheus.Counter
	votes           *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		accounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_created_total",
			Help:      "Permanent accounts created, by origin.",
		}, []string{"origin"}),
		storiesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stories_posted_total",
			Help:      "Stories posted.",
		}),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Votes cast, by value and whether counters changed.",
		}, []string{"vote", "changed"}),
	}

	reg.MustRegister(
		c.requests,
		c.requestDuration,
		c.accounts,
		c.storiesPosted,
		c.votes,
	)

	return c
}

// ObserveRequest records a finished HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAccountCreated counts a registration. promoted marks a temporary
// account turned permanent.
func (c *Collector) RecordAccountCreated(promoted bool) {
	origin := "new"
	if promoted {
		origin = "promoted"
	}
	c.accounts.WithLabelValues(origin).Inc()
}

// RecordStoryPosted counts a new story.
func (c *Collector) RecordStoryPosted() {
	c.storiesPosted.Inc()
}

// RecordVote counts a cast vote.
func (c *Collector) RecordVote(vote models.VoteValue, changed bool) {
	c.votes.WithLabelValues(string(vote), strconv.FormatBool(changed)).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
