package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	StatusCodeCategoryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_status_category_total",
			Help: "Total number of responses by status category (2xx, 3xx, 4xx, 5xx)",
		},
		[]string{"service", "category"},
	)

	NavigationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_navigation_actions_total",
			Help: "Navigation actions by target page and whether they changed state",
		},
		[]string{"page", "applied"},
	)

	LicenseUpdateCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_license_updates_total",
			Help: "License slider updates, labelled by whether the value was clamped",
		},
		[]string{"clamped"},
	)

	MenuToggleCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_mobile_menu_toggles_total",
			Help: "Mobile menu toggle actions",
		},
	)

	QuoteCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_quotes_total",
			Help: "Stateless price quotes served, by tier",
		},
		[]string{"tier"},
	)

	registerOnce sync.Once
)

// Register регистрирует метрики в глобальном реестре один раз на процесс
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDurationHistogram,
			StatusCodeCategoryCounter,
			NavigationCounter,
			LicenseUpdateCounter,
			MenuToggleCounter,
			QuoteCounter,
		)
	})
}

// HTTPMetrics holds configuration for HTTP metrics collection
type HTTPMetrics struct {
	ServiceName string
}

// NewHTTPMetrics creates a new HTTP metrics collector for a specific service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	Register()
	return &HTTPMetrics{ServiceName: serviceName}
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

// Middleware records HTTP request metrics
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(m.ServiceName, method, path, statusStr).Inc()
		if category := statusCategory(status); category != "" {
			StatusCodeCategoryCounter.WithLabelValues(m.ServiceName, category).Inc()
		}
		RequestDurationHistogram.WithLabelValues(m.ServiceName, method, path, statusStr).
			Observe(time.Since(start).Seconds())
	}
}

// RecordNavigation учитывает действие навигации
func RecordNavigation(page string, applied bool) {
	if !applied {
		// неизвестные страницы не попадают в метку, чтобы не раздувать кардинальность
		page = "unknown"
	}
	NavigationCounter.WithLabelValues(page, strconv.FormatBool(applied)).Inc()
}

func RecordLicenseUpdate(requested, stored int) {
	LicenseUpdateCounter.WithLabelValues(strconv.FormatBool(requested != stored)).Inc()
}

func RecordMenuToggle() {
	MenuToggleCounter.Inc()
}

func RecordQuote(tier string) {
	QuoteCounter.WithLabelValues(tier).Inc()
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
