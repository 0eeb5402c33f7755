package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP Метрики (входящие запросы админ-панели)
// =============================================================================

// HttpRequestsTotal - счётчик всех HTTP запросов
// Labels: service, method, path, status
// Пример запроса PromQL: rate(http_requests_total{service="storeadmin"}[5m])
var HttpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	},
	[]string{"service", "method", "path", "status"},
)

// HttpRequestDuration - гистограмма времени ответа
// Пример: histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))
var HttpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "path"},
)

// HttpRequestsInFlight - текущее количество обрабатываемых запросов
var HttpRequestsInFlight = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Current number of HTTP requests being processed",
	},
	[]string{"service"},
)

// =============================================================================
// Upstream API Метрики (исходящие запросы к storefront backend)
// =============================================================================

// UpstreamRequestsTotal - счётчик запросов к storefront API
// Labels: service, method, resource, outcome (ok, http_error, network_error,
// timeout, bad_shape)
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Total number of requests to the storefront API",
	},
	[]string{"service", "method", "resource", "outcome"},
)

// UpstreamRequestDuration - время ответа storefront API
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of storefront API requests in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"service", "method", "resource"},
)

// UpstreamShapeFallbacks - сколько раз ответ пришел не в каноничном конверте
// Labels: shape (array, data_wrapper, keyed_wrapper, unrecognized)
// Рост unrecognized означает поломку контракта на стороне backend
var UpstreamShapeFallbacks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_envelope_shapes_total",
		Help: "Envelope shapes observed in storefront API responses",
	},
	[]string{"service", "resource", "shape"},
)

// =============================================================================
// Dashboard Метрики
// =============================================================================

// DashboardRefreshTotal - обновления dashboard снапшота (фоновые и по запросу)
var DashboardRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dashboard_refresh_total",
		Help: "Total number of dashboard snapshot refreshes",
	},
	[]string{"service", "trigger", "outcome"}, // trigger: cron, request
)
