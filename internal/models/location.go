package models

import (
	"time"

	"delivery-zone-api/internal/zone"

	"github.com/google/uuid"
)

// District is a named neighbourhood centre used to resolve manually entered addresses.
type District struct {
	ID        int     `json:"id" mapstructure:"id"`
	Name      string  `json:"name" mapstructure:"name"`
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
}

// ZoneCheck is the audit record of one delivery-zone evaluation.
type ZoneCheck struct {
	ID         uuid.UUID `json:"id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Source     string    `json:"source"`
	InZone     bool      `json:"in_zone"`
	DistanceKm float64   `json:"distance_km"`
	CheckedAt  time.Time `json:"checked_at"`
}

// CheckResult is what the API returns for one evaluated point.
type CheckResult struct {
	ID         uuid.UUID     `json:"id"`
	Point      zone.GeoPoint `json:"point"`
	Source     string        `json:"source"`
	InZone     bool          `json:"in_zone"`
	DistanceKm float64       `json:"distance_km"`
	Estimate   zone.Estimate `json:"estimate"`
	District   string        `json:"district,omitempty"`
}

// ZoneInfo describes the configured delivery zone for map rendering.
type ZoneInfo struct {
	Restaurant  zone.GeoPoint   `json:"restaurant"`
	Polygon     []zone.GeoPoint `json:"polygon"`
	ETABuckets  []zone.Bucket   `json:"eta_buckets"`
	ETAFallback zone.Fallback   `json:"eta_fallback"`
}
