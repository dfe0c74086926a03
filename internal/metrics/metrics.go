package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal     *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
	HTTPActiveConnections *prometheus.GaugeVec

	// Social metrics
	PostsCreatedTotal    *prometheus.CounterVec
	LikesTotal           *prometheus.CounterVec
	CommentsCreatedTotal prometheus.Counter

	// Auth metrics
	AuthEventsTotal *prometheus.CounterVec

	// Media metrics
	ImageUploads     *prometheus.CounterVec
	ImageUploadBytes prometheus.Histogram

	// Error metrics
	ErrorsTotal *prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Initialize creates and registers all Prometheus metrics
func Initialize() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "framez_http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "framez_http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"method", "path", "status"},
			),
			HTTPActiveConnections: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "framez_http_active_requests",
					Help: "Number of in-flight HTTP requests",
				},
				[]string{"method", "path"},
			),
			PostsCreatedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "framez_posts_created_total",
					Help: "Total number of posts created",
				},
				[]string{"has_image"},
			),
			LikesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "framez_likes_total",
					Help: "Like set/unset operations",
				},
				[]string{"action"},
			),
			CommentsCreatedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "framez_comments_created_total",
					Help: "Total number of comments created",
				},
			),
			AuthEventsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "framez_auth_events_total",
					Help: "Authentication events by type and result",
				},
				[]string{"event", "result"},
			),
			ImageUploads: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "framez_image_uploads_total",
					Help: "Image uploads by provider and result",
				},
				[]string{"provider", "status"},
			),
			ImageUploadBytes: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "framez_image_upload_bytes",
					Help:    "Size of uploaded images in bytes",
					Buckets: prometheus.ExponentialBuckets(10_000, 4, 7),
				},
			),
			ErrorsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "framez_errors_total",
					Help: "Total number of errors by code",
				},
				[]string{"code", "path"},
			),
		}
	})
	return instance
}

// Get returns the global metrics instance
func Get() *Metrics {
	if instance == nil {
		return Initialize()
	}
	return instance
}
