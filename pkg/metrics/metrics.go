// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Collectors struct {
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	moodSaves  *prometheus.CounterVec
	refreshRun *prometheus.CounterVec
}

// New registers the collectors on reg. Use prometheus.NewRegistry() in tests
// to avoid duplicate registration on the default registry.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soberup",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "soberup",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		moodSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soberup",
			Name:      "mood_entries_saved_total",
			Help:      "Mood entries saved, by band and whether the day already had an entry.",
		}, []string{"band", "kind"}),
		refreshRun: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soberup",
			Name:      "sober_days_refresh_runs_total",
			Help:      "Sober-day cache refresh runs by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(c.requests, c.latency, c.moodSaves, c.refreshRun)
	return c
}

func (c *Collectors) ObserveRequest(method, route, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(method, route, status).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// MoodSaved counts a successful save. kind is "created" or "updated".
func (c *Collectors) MoodSaved(band, kind string) {
	if c == nil {
		return
	}
	c.moodSaves.WithLabelValues(band, kind).Inc()
}

func (c *Collectors) RefreshRun(outcome string) {
	if c == nil {
		return
	}
	c.refreshRun.WithLabelValues(outcome).Inc()
}
