package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operational counters. The active-user count lives here, in the metrics
// registry, rather than in a process-local integer, so it survives running
// more than one instance behind a scraper.
var (
	ActiveUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "velora",
		Name:      "active_users",
		Help:      "Number of users who logged in during the current token window.",
	})

	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "velora",
		Name:      "signups_total",
		Help:      "Total number of successful signups.",
	})

	OrdersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "velora",
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	})
)

var metricsRegistry = prometheus.NewRegistry()

func init() {
	metricsRegistry.MustRegister(collectors.NewGoCollector())
	metricsRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsRegistry.MustRegister(ActiveUsers, SignupsTotal, OrdersCreatedTotal)
}

// MetricsHandler exposes the Prometheus metrics page for scraping.
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
