package metrics

import "time"

// UpstreamOutcome - результат запроса к storefront API для метрик
type UpstreamOutcome string

const (
	UpstreamOK           UpstreamOutcome = "ok"
	UpstreamHTTPError    UpstreamOutcome = "http_error"
	UpstreamNetworkError UpstreamOutcome = "network_error"
	UpstreamTimeout      UpstreamOutcome = "timeout"
	UpstreamBadShape     UpstreamOutcome = "bad_shape"
)

// UpstreamTimer измеряет длительность одного запроса к storefront API
type UpstreamTimer struct {
	service  string
	method   string
	resource string
	start    time.Time
}

func NewUpstreamTimer(service, method, resource string) *UpstreamTimer {
	return &UpstreamTimer{
		service:  service,
		method:   method,
		resource: resource,
		start:    time.Now(),
	}
}

// Observe записывает длительность и итог запроса
func (ut *UpstreamTimer) Observe(outcome UpstreamOutcome) {
	duration := time.Since(ut.start).Seconds()
	UpstreamRequestDuration.WithLabelValues(ut.service, ut.method, ut.resource).Observe(duration)
	UpstreamRequestsTotal.WithLabelValues(ut.service, ut.method, ut.resource, string(outcome)).Inc()
}

// RecordEnvelopeShape фиксирует какой конверт пришел в ответе
func RecordEnvelopeShape(service, resource, shape string) {
	UpstreamShapeFallbacks.WithLabelValues(service, resource, shape).Inc()
}

// RecordDashboardRefresh фиксирует обновление dashboard снапшота
func RecordDashboardRefresh(service, trigger string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	DashboardRefreshTotal.WithLabelValues(service, trigger, outcome).Inc()
}
