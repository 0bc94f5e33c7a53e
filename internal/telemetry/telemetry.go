// Package telemetry wires structured logging and Prometheus metrics for
// the spatial index service, grounded on other_examples/manifests
// /sourcegraph-zoekt's use of go.uber.org/zap and
// github.com/prometheus/client_golang — the dependency pair this
// retrieval pack uses for service observability.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Metrics is the registry of gauges and counters exposed at /metrics.
type Metrics struct {
	QuadtreeParticles prometheus.Gauge
	BSPPolygons       prometheus.Gauge
	SSTreeEntries     prometheus.Gauge
	HTTPRequestsTotal *prometheus.CounterVec
}

// NewMetrics registers the service's gauges and counters against the
// default Prometheus registerer.
func NewMetrics() *Metrics {
	return &Metrics{
		QuadtreeParticles: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "quadtree_particles",
			Help: "Number of particles currently held by the quadtree.",
		}),
		BSPPolygons: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bsp_polygons",
			Help: "Number of polygons currently held by the BSP tree.",
		}),
		SSTreeEntries: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "sstree_entries",
			Help: "Number of data entries currently held by the SS-tree.",
		}),
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests served, by route and status code.",
		}, []string{"route", "status"}),
	}
}

// NewLogger builds the service's sugared zap logger. Production builds
// use zap's JSON encoder; the CLI demo subcommands use the console
// encoder instead, via NewDevelopmentLogger.
func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// NewDevelopmentLogger builds a human-readable console logger for the
// CLI demo subcommands, where JSON output would just get in the way.
func NewDevelopmentLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
