package observability

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"delivery-zone-api/internal/zone"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ZoneCollector bundles Prometheus metrics for delivery-zone checks.
type ZoneCollector struct {
	gatherer prometheus.Gatherer

	Checks      *prometheus.CounterVec
	Distances   prometheus.Histogram
	Resolutions *prometheus.CounterVec
}

// NewZoneCollector registers zone metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewZoneCollector(reg prometheus.Registerer) (*ZoneCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	checks, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zone_checks_total",
		Help: "Total number of delivery-zone checks, labeled by location source and result.",
	}, []string{"source", "in_zone"}), "zone_checks_total")
	if err != nil {
		return nil, err
	}

	distances, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "zone_check_distance_km",
		Help:    "Distance from the restaurant of checked points, in kilometres.",
		Buckets: []float64{0.25, 0.5, 1, 1.5, 2, 3, 5, 10, 25, 100},
	}), "zone_check_distance_km")
	if err != nil {
		return nil, err
	}

	resolutions, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "location_resolutions_total",
		Help: "Total number of location resolutions, labeled by the source that answered.",
	}, []string{"source"}), "location_resolutions_total")
	if err != nil {
		return nil, err
	}

	return &ZoneCollector{
		gatherer:    gatherer,
		Checks:      checks,
		Distances:   distances,
		Resolutions: resolutions,
	}, nil
}

// ObserveCheck records one evaluated point.
func (c *ZoneCollector) ObserveCheck(source string, v zone.ZoneVerdict) {
	if c == nil {
		return
	}
	c.Checks.WithLabelValues(source, strconv.FormatBool(v.InZone)).Inc()
	c.Distances.Observe(v.DistanceKm)
}

// ObserveResolution records which location source answered a resolve request.
func (c *ZoneCollector) ObserveResolution(source string) {
	if c == nil {
		return
	}
	c.Resolutions.WithLabelValues(source).Inc()
}

// Handler exposes the registered metrics for scraping.
func (c *ZoneCollector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// register adds col to reg. An identical collector that is already registered
// is returned in its place.
func register[T prometheus.Collector](reg prometheus.Registerer, col T, name string) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("observability: register %s: %w", name, err)
	}
	return col, nil
}
