package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GatewayRequestsTotal - обращения к шлюзу по виду данных и итоговому источнику (live, cache, fallback)
	GatewayRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_gateway_requests_total",
		Help: "Gateway lookups by data kind and resolved source",
	}, []string{"kind", "source"})
	GatewayFetchDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "explorer_gateway_fetch_duration_ms",
		Help:    "Remote fetch duration in milliseconds",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"kind"})
	CacheErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "explorer_cache_errors_total",
		Help: "Cache get/set failures",
	})
	// CacheLookupsTotal - чтения кеша по бэкенду (redis, memory) и результату (hit, miss)
	CacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_cache_lookups_total",
		Help: "Cache reads by backend and result",
	}, []string{"backend", "result"})
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "explorer_active_sessions",
		Help: "Explorer sessions currently held in memory",
	})
	StalePlantingResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "explorer_stale_planting_results_total",
		Help: "Planting simulation results discarded because a newer query superseded them",
	})
	WorkerRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_worker_runs_total",
		Help: "Background worker iterations by worker and result",
	}, []string{"worker", "result"})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "explorer_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "explorer_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	}, []string{"method", "route"})
)

func init() {
	prometheus.MustRegister(GatewayRequestsTotal)
	prometheus.MustRegister(GatewayFetchDurationMs)
	prometheus.MustRegister(CacheErrorsTotal)
	prometheus.MustRegister(CacheLookupsTotal)
	prometheus.MustRegister(ActiveSessions)
	prometheus.MustRegister(StalePlantingResultsTotal)
	prometheus.MustRegister(WorkerRunsTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
}

// ResultLabel - метка результата: ok или error
func ResultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// LookupLabel - метка чтения кеша: hit или miss
func LookupLabel(found bool) string {
	if found {
		return "hit"
	}
	return "miss"
}

// Handler отдаёт зарегистрированные метрики для /metrics
func Handler() http.Handler { return promhttp.Handler() }
