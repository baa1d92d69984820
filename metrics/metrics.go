// Package metrics instruments degrees searches with Prometheus collectors.
//
// Metrics exposed (all namespaced with "degrees_"):
//
//  1. searches_total (counter): completed searches.
//     Labels: outcome (found, not_found, error), discipline.
//  2. search_expanded_nodes (histogram): states expanded per search.
//  3. search_enqueued_nodes (histogram): states added to the frontier per search.
//  4. search_duration_seconds (histogram): wall time per search.
//  5. path_degrees (histogram): length of found paths.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	start := time.Now()
//	res, err := store.Search(src, dst, opts...)
//	m.Observe("fifo", res, err, time.Since(start))
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/degrees/search"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Collector groups the search metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	enqueued prometheus.Histogram
	duration prometheus.Histogram
	degrees  prometheus.Histogram
}

// New creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is convenient in tests.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "degrees",
			Name:      "searches_total",
			Help:      "Completed searches by outcome and frontier discipline.",
		}, []string{"outcome", "discipline"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "degrees",
			Name:      "search_expanded_nodes",
			Help:      "States expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		enqueued: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "degrees",
			Name:      "search_enqueued_nodes",
			Help:      "States added to the frontier per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "degrees",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of searches.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		degrees: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "degrees",
			Name:      "path_degrees",
			Help:      "Length of found paths in co-star steps.",
			Buckets:   prometheus.LinearBuckets(0, 1, 11),
		}),
	}
	if reg != nil {
		reg.MustRegister(c.searches, c.expanded, c.enqueued, c.duration, c.degrees)
	}

	return c
}

// Observe records one finished search. res may be nil when err is set.
func (c *Collector) Observe(discipline string, res *search.Result, err error, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.duration.Observe(elapsed.Seconds())

	outcome := OutcomeNotFound
	switch {
	case err != nil:
		outcome = OutcomeError
	case res != nil && res.Found:
		outcome = OutcomeFound
		c.degrees.Observe(float64(len(res.Path)))
	}
	c.searches.WithLabelValues(outcome, discipline).Inc()

	if res != nil {
		c.expanded.Observe(float64(res.Expanded))
		c.enqueued.Observe(float64(res.Enqueued))
	}
}

// WriteText gathers g and writes every metric family to w in the
// Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
