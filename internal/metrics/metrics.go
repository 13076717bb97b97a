// Package metrics holds the Prometheus collectors for reference-data loads,
// classifications and the HTTP layer.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReferenceLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovetype_reference_loads_total",
			Help: "Reference dataset load attempts by dataset and result",
		},
		[]string{"dataset", "result"}, // result: "ok", "missing", "invalid"
	)

	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovetype_classifications_total",
			Help: "Successful classifications by winning macro-category",
		},
		[]string{"macro", "hybrid"},
	)

	ClassificationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovetype_classification_errors_total",
			Help: "Failed classifications by error kind",
		},
		[]string{"kind"},
	)

	ClassificationConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lovetype_classification_confidence",
			Help:    "Confidence score of successful classifications",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lovetype_api_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lovetype_api_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// RecordReferenceLoad counts a dataset load attempt.
func RecordReferenceLoad(dataset, result string) {
	ReferenceLoads.WithLabelValues(dataset, result).Inc()
}

// RecordClassification counts a successful classification.
func RecordClassification(macro string, hybrid bool, confidence int) {
	Classifications.WithLabelValues(macro, strconv.FormatBool(hybrid)).Inc()
	ClassificationConfidence.Observe(float64(confidence))
}

// RecordClassificationError counts a failed classification.
func RecordClassificationError(kind string) {
	ClassificationErrors.WithLabelValues(kind).Inc()
}

// RecordAPIRequest records one served HTTP request.
func RecordAPIRequest(route, method string, status int, d time.Duration) {
	APIRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
