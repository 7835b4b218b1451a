// Package metrics exposes Prometheus counters for HTTP traffic, match
// registrations and standings publication.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oac-maputo/supertaca/services"
)

const namespace = "supertaca"

// Submission outcomes.
const (
	OutcomeRegistered = "registered"
	OutcomeRejected   = "rejected"
	OutcomeFailed     = "failed"
)

// Recorder owns a private registry. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	submissions  *prometheus.CounterVec
	goals        *prometheus.CounterVec
	publications *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_submissions_total",
			Help:      "Match submissions by outcome.",
		}, []string{"outcome"}),
		goals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_rows_total",
			Help:      "Goal rows processed during submissions by result.",
		}, []string{"result"}),
		publications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "standings_publications_total",
			Help:      "Standings publication attempts by outcome.",
		}, []string{"outcome"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.submissions,
		r.goals,
		r.publications,
	)
	return r
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gauge registers a gauge whose value is read from fn at scrape time.
func (r *Recorder) Gauge(name, help string, fn func() float64) {
	if r == nil {
		return
	}
	r.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, fn))
}

// RecordSubmission counts one submission and, when a match was written, its goal rows.
func (r *Recorder) RecordSubmission(result *services.SubmitResult, err error) {
	if r == nil {
		return
	}
	switch {
	case err == nil:
		r.submissions.WithLabelValues(OutcomeRegistered).Inc()
	case services.IsValidationError(err):
		r.submissions.WithLabelValues(OutcomeRejected).Inc()
	default:
		r.submissions.WithLabelValues(OutcomeFailed).Inc()
	}
	if result == nil {
		return
	}
	r.goals.WithLabelValues("saved").Add(float64(len(result.Goals)))
	r.goals.WithLabelValues("failed").Add(float64(result.GoalsFailed))
	r.goals.WithLabelValues("skipped").Add(float64(result.GoalsSkipped))
}

// RecordPublication counts one publication attempt.
func (r *Recorder) RecordPublication(err error) {
	if r == nil {
		return
	}
	switch {
	case err == nil:
		r.publications.WithLabelValues("published").Inc()
	case errors.Is(err, services.ErrPublishingDisabled):
		r.publications.WithLabelValues("disabled").Inc()
	default:
		r.publications.WithLabelValues(OutcomeFailed).Inc()
	}
}

// Middleware records request counts and latency, labelled with the chi route
// pattern so path parameters do not explode cardinality.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	if r == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		r.httpRequests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}
