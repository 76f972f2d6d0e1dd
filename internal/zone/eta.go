package zone

import (
	"fmt"
	"math"
)

// Bucket maps every distance below MaxDistanceKm to a delivery window.
type Bucket struct {
	MaxDistanceKm float64 `json:"max_distance_km" mapstructure:"max_distance_km"`
	MinMinutes    int     `json:"min_minutes" mapstructure:"min_minutes"`
	MaxMinutes    int     `json:"max_minutes" mapstructure:"max_minutes"`
}

// Fallback is the open-ended window used past the last bucket. A zero
// MaxMinutes means "MinMinutes or more".
type Fallback struct {
	MinMinutes int `json:"min_minutes" mapstructure:"min_minutes"`
	MaxMinutes int `json:"max_minutes" mapstructure:"max_minutes"`
}

// Estimate is a delivery window in minutes.
type Estimate struct {
	MinMinutes int  `json:"min_minutes"`
	MaxMinutes int  `json:"max_minutes,omitempty"`
	OpenEnded  bool `json:"open_ended"`
}

// ETATable is an ordered, validated distance-to-window table.
type ETATable struct {
	buckets  []Bucket
	fallback Fallback
}

// DefaultBuckets and DefaultFallback are the storefront's delivery windows.
var (
	DefaultBuckets = []Bucket{
		{MaxDistanceKm: 0.5, MinMinutes: 15, MaxMinutes: 20},
		{MaxDistanceKm: 1, MinMinutes: 20, MaxMinutes: 25},
		{MaxDistanceKm: 1.5, MinMinutes: 25, MaxMinutes: 30},
	}
	DefaultFallback = Fallback{MinMinutes: 30, MaxMinutes: 35}
)

// NewETATable validates buckets and fallback. Thresholds must be positive and
// strictly increasing; windows must never get shorter as distance grows.
func NewETATable(buckets []Bucket, fallback Fallback) (ETATable, error) {
	prev := Bucket{}
	for i, b := range buckets {
		field := fmt.Sprintf("eta_buckets[%d]", i)
		if math.IsNaN(b.MaxDistanceKm) || math.IsInf(b.MaxDistanceKm, 0) || b.MaxDistanceKm <= 0 {
			return ETATable{}, configErrorf(field, "threshold %v must be positive and finite", b.MaxDistanceKm)
		}
		if b.MinMinutes < 0 || b.MaxMinutes < b.MinMinutes {
			return ETATable{}, configErrorf(field, "window %d-%d is not a valid range", b.MinMinutes, b.MaxMinutes)
		}
		if i > 0 {
			if b.MaxDistanceKm <= prev.MaxDistanceKm {
				return ETATable{}, configErrorf(field, "threshold %v does not exceed %v", b.MaxDistanceKm, prev.MaxDistanceKm)
			}
			if b.MinMinutes < prev.MinMinutes || b.MaxMinutes < prev.MaxMinutes {
				return ETATable{}, configErrorf(field, "window %d-%d is shorter than %d-%d", b.MinMinutes, b.MaxMinutes, prev.MinMinutes, prev.MaxMinutes)
			}
		}
		prev = b
	}

	if fallback.MinMinutes < 0 || (fallback.MaxMinutes != 0 && fallback.MaxMinutes < fallback.MinMinutes) {
		return ETATable{}, configErrorf("eta_fallback", "window %d-%d is not a valid range", fallback.MinMinutes, fallback.MaxMinutes)
	}
	if len(buckets) > 0 {
		if fallback.MinMinutes < prev.MinMinutes || (fallback.MaxMinutes != 0 && fallback.MaxMinutes < prev.MaxMinutes) {
			return ETATable{}, configErrorf("eta_fallback", "window %d-%d is shorter than the last bucket", fallback.MinMinutes, fallback.MaxMinutes)
		}
	}

	owned := make([]Bucket, len(buckets))
	copy(owned, buckets)
	return ETATable{buckets: owned, fallback: fallback}, nil
}

// DefaultETATable returns the table built from DefaultBuckets and DefaultFallback.
func DefaultETATable() ETATable {
	t, err := NewETATable(DefaultBuckets, DefaultFallback)
	if err != nil {
		panic(err)
	}
	return t
}

// Buckets returns a copy of the configured buckets.
func (t ETATable) Buckets() []Bucket {
	out := make([]Bucket, len(t.buckets))
	copy(out, t.buckets)
	return out
}

// Fallback returns the window used past the last bucket.
func (t ETATable) Fallback() Fallback {
	return t.fallback
}

// EstimatedDeliveryMinutes picks the first bucket whose threshold exceeds
// distanceKm, or the fallback window.
func (t ETATable) EstimatedDeliveryMinutes(distanceKm float64) Estimate {
	for _, b := range t.buckets {
		if distanceKm < b.MaxDistanceKm {
			return Estimate{MinMinutes: b.MinMinutes, MaxMinutes: b.MaxMinutes}
		}
	}
	return Estimate{
		MinMinutes: t.fallback.MinMinutes,
		MaxMinutes: t.fallback.MaxMinutes,
		OpenEnded:  t.fallback.MaxMinutes == 0,
	}
}

// BucketIndex reports the index of the bucket distanceKm falls in; the fallback
// has index len(Buckets()).
func (t ETATable) BucketIndex(distanceKm float64) int {
	for i, b := range t.buckets {
		if distanceKm < b.MaxDistanceKm {
			return i
		}
	}
	return len(t.buckets)
}
