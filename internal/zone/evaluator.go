package zone

// ZoneVerdict is the result of checking one point.
type ZoneVerdict struct {
	InZone     bool    `json:"in_zone"`
	DistanceKm float64 `json:"distance_km"`
}

// Evaluate checks point against polygon and measures its distance to restaurant.
func Evaluate(point GeoPoint, polygon DeliveryPolygon, restaurant GeoPoint) ZoneVerdict {
	return ZoneVerdict{
		InZone:     IsPointInPolygon(point, polygon),
		DistanceKm: DistanceKm(point, restaurant),
	}
}

// Config is the raw zone configuration, typically decoded by the config package.
type Config struct {
	Restaurant  GeoPoint   `mapstructure:"restaurant"`
	Polygon     []GeoPoint `mapstructure:"polygon"`
	ETABuckets  []Bucket   `mapstructure:"eta_buckets"`
	ETAFallback Fallback   `mapstructure:"eta_fallback"`
}

// Evaluator holds validated zone configuration. It is read-only after
// construction and safe for concurrent use.
type Evaluator struct {
	polygon    DeliveryPolygon
	restaurant GeoPoint
	eta        ETATable
}

// NewEvaluator validates cfg and builds an Evaluator.
func NewEvaluator(cfg Config) (*Evaluator, error) {
	if err := ValidatePoint(cfg.Restaurant); err != nil {
		return nil, configErrorf("restaurant", "%v", err)
	}
	polygon, err := NewDeliveryPolygon(cfg.Polygon)
	if err != nil {
		return nil, err
	}
	eta, err := NewETATable(cfg.ETABuckets, cfg.ETAFallback)
	if err != nil {
		return nil, err
	}
	return &Evaluator{polygon: polygon, restaurant: cfg.Restaurant, eta: eta}, nil
}

// Evaluate checks point against the configured polygon and restaurant.
func (e *Evaluator) Evaluate(point GeoPoint) ZoneVerdict {
	return Evaluate(point, e.polygon, e.restaurant)
}

// EstimatedDeliveryMinutes maps a distance to the configured delivery window.
func (e *Evaluator) EstimatedDeliveryMinutes(distanceKm float64) Estimate {
	return e.eta.EstimatedDeliveryMinutes(distanceKm)
}

func (e *Evaluator) Polygon() DeliveryPolygon { return e.polygon }

func (e *Evaluator) Restaurant() GeoPoint { return e.restaurant }

func (e *Evaluator) ETATable() ETATable { return e.eta }
