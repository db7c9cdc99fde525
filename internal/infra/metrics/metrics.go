// Package metrics exposes ingestion counters in Prometheus format.
package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/ports"
)

const namespace = "recordsort"

// Registry owns a private Prometheus registry and the recordsort collectors.
type Registry struct {
	reg *prometheus.Registry

	ingested        *prometheus.CounterVec
	parseFailures   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ingested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "records",
				Name:      "ingested_total",
				Help:      "Total number of records parsed and stored",
			},
			[]string{"source", "delimiter"},
		),
		parseFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "records",
				Name:      "parse_failures_total",
				Help:      "Total number of rejected record inputs by reason",
			},
			[]string{"source", "reason"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	r.reg.MustRegister(
		r.ingested,
		r.parseFailures,
		r.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// TrackStoreSize exports the current number of stored records as a gauge.
func (r *Registry) TrackStoreSize(size func() float64) error {
	return r.reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "records",
			Help:      "Number of records currently held by the store",
		},
		size,
	))
}

// Gatherer exposes the registry for in-process scraping.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

var _ ports.IngestObserver = (*Registry)(nil)

func (r *Registry) RecordsIngested(source string, delimiter domain.Delimiter, n int) {
	r.ingested.WithLabelValues(source, delimiter.Name()).Add(float64(n))
}

func (r *Registry) ParseFailed(source string, err error) {
	r.parseFailures.WithLabelValues(source, Reason(err)).Inc()
}

// ObserveRequest records one served HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, seconds float64) {
	r.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

// Reason maps an ingestion error to a low-cardinality label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidLine):
		return "empty_line"
	case errors.Is(err, domain.ErrInvalidDelimiter):
		return "delimiter"
	case errors.Is(err, domain.ErrFieldCount):
		return "field_count"
	case errors.Is(err, domain.ErrInvalidGender):
		return "gender"
	case errors.Is(err, domain.ErrInvalidDate):
		return "date"
	case errors.Is(err, domain.ErrInvalidFilePath):
		return "file_path"
	case domain.IsResourceError(err):
		return "resource"
	}
	return "other"
}
