package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitfix",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fitfix",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	recommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fitfix",
			Subsystem: "analytics",
			Name:      "recommendations_generated_total",
			Help:      "Recommendations produced by the rule engine, by type",
		},
		[]string{"type"},
	)

	statisticsRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fitfix",
			Subsystem: "analytics",
			Name:      "statistics_refresh_duration_seconds",
			Help:      "Duration of fleet statistics aggregation in seconds",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	fleetTotalEmployees = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitfix",
		Subsystem: "fleet",
		Name:      "employees_total",
		Help:      "Total number of employee accounts at the last refresh",
	})

	fleetActiveSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitfix",
		Subsystem: "fleet",
		Name:      "active_subscriptions",
		Help:      "Active subscriptions at the last refresh",
	})

	fleetExpiredSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitfix",
		Subsystem: "fleet",
		Name:      "expired_subscriptions",
		Help:      "Expired subscriptions at the last refresh",
	})

	fleetExpiringSoon = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitfix",
		Subsystem: "fleet",
		Name:      "expiring_soon",
		Help:      "Subscriptions expiring within a week at the last refresh",
	})

	fleetTotalRevenue = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitfix",
		Subsystem: "fleet",
		Name:      "total_revenue",
		Help:      "Lifetime subscription revenue at the last refresh",
	})
)

// RecordHTTPRequest records one served HTTP request
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// RecordRecommendations counts rule engine output by recommendation type
func RecordRecommendations(byType map[string]int) {
	for typ, n := range byType {
		recommendationsGenerated.WithLabelValues(typ).Add(float64(n))
	}
}

// RecordStatisticsRefresh observes one fleet aggregation pass
func RecordStatisticsRefresh(duration time.Duration) {
	statisticsRefreshDuration.Observe(duration.Seconds())
}

// SetFleetGauges publishes the latest fleet statistics snapshot
func SetFleetGauges(totalEmployees, active, expired, expiringSoon int, revenue float64) {
	fleetTotalEmployees.Set(float64(totalEmployees))
	fleetActiveSubscriptions.Set(float64(active))
	fleetExpiredSubscriptions.Set(float64(expired))
	fleetExpiringSoon.Set(float64(expiringSoon))
	fleetTotalRevenue.Set(revenue)
}

// Handler returns the prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}
