package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"delivery-zone-api/internal/locate"
	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/zone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidDistance is returned for negative or non-finite distances.
var ErrInvalidDistance = errors.New("service: distance must be a non-negative finite number")

// ErrAuditDisabled is returned when check history is requested without a database.
var ErrAuditDisabled = errors.New("service: zone check history is not configured")

const (
	defaultCheckLimit = 20
	maxCheckLimit     = 100
)

// ZoneCheckRepository interface for dependency injection
type ZoneCheckRepository interface {
	RecordCheck(ctx context.Context, check models.ZoneCheck) error
	ListRecentChecks(ctx context.Context, limit int) ([]models.ZoneCheck, error)
	GetCheck(ctx context.Context, id uuid.UUID) (*models.ZoneCheck, error)
}

// LocationResolver picks a point out of the hints a client sent.
type LocationResolver interface {
	Resolve(ctx context.Context, req locate.Request) (locate.Resolution, error)
}

// DistrictLocator labels a point with its nearest district.
type DistrictLocator interface {
	Nearest(p zone.GeoPoint) (models.District, float64, bool)
}

// MetricsRecorder receives one observation per check and resolution.
type MetricsRecorder interface {
	ObserveCheck(source string, v zone.ZoneVerdict)
	ObserveResolution(source string)
}

// ZoneService contains the delivery-zone business logic around the evaluator
type ZoneService struct {
	evaluator *zone.Evaluator
	repo      ZoneCheckRepository
	resolver  LocationResolver
	districts DistrictLocator
	metrics   MetricsRecorder

	now   func() time.Time
	newID func() uuid.UUID
}

// NewZoneService creates a new zone service. repo, districts and metrics may be nil.
func NewZoneService(evaluator *zone.Evaluator, repo ZoneCheckRepository, resolver LocationResolver, districts DistrictLocator, metrics MetricsRecorder) *ZoneService {
	return &ZoneService{
		evaluator: evaluator,
		repo:      repo,
		resolver:  resolver,
		districts: districts,
		metrics:   metrics,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// Zone returns the configured delivery zone
func (s *ZoneService) Zone() models.ZoneInfo {
	eta := s.evaluator.ETATable()
	return models.ZoneInfo{
		Restaurant:  s.evaluator.Restaurant(),
		Polygon:     s.evaluator.Polygon().Vertices(),
		ETABuckets:  eta.Buckets(),
		ETAFallback: eta.Fallback(),
	}
}

// Check evaluates a point the caller already knows
func (s *ZoneService) Check(ctx context.Context, point zone.GeoPoint, source string) (*models.CheckResult, error) {
	if err := zone.ValidatePoint(point); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	verdict := s.evaluator.Evaluate(point)
	result := &models.CheckResult{
		ID:         s.newID(),
		Point:      point,
		Source:     source,
		InZone:     verdict.InZone,
		DistanceKm: verdict.DistanceKm,
		Estimate:   s.evaluator.EstimatedDeliveryMinutes(verdict.DistanceKm),
	}
	if s.districts != nil {
		if d, _, ok := s.districts.Nearest(point); ok {
			result.District = d.Name
		}
	}

	if s.metrics != nil {
		s.metrics.ObserveCheck(source, verdict)
	}

	if s.repo != nil {
		err := s.repo.RecordCheck(ctx, models.ZoneCheck{
			ID:         result.ID,
			Latitude:   point.Lat,
			Longitude:  point.Lng,
			Source:     source,
			InZone:     verdict.InZone,
			DistanceKm: verdict.DistanceKm,
			CheckedAt:  s.now().UTC(),
		})
		if err != nil {
			log.Warn().Err(err).Str("check_id", result.ID.String()).Msg("failed to record zone check")
		}
	}

	return result, nil
}

// Resolve finds the customer's location through the configured sources and checks it
func (s *ZoneService) Resolve(ctx context.Context, req locate.Request) (*models.CheckResult, error) {
	res, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve location: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ObserveResolution(res.Source)
	}

	return s.Check(ctx, res.Point, res.Source)
}

// Estimate maps a distance to the configured delivery window
func (s *ZoneService) Estimate(distanceKm float64) (zone.Estimate, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return zone.Estimate{}, ErrInvalidDistance
	}
	return s.evaluator.EstimatedDeliveryMinutes(distanceKm), nil
}

// RecentChecks lists the newest recorded checks. limit is clamped to [1, 100]
// with 0 meaning the default of 20.
func (s *ZoneService) RecentChecks(ctx context.Context, limit int) ([]models.ZoneCheck, error) {
	if s.repo == nil {
		return nil, ErrAuditDisabled
	}

	switch {
	case limit <= 0:
		limit = defaultCheckLimit
	case limit > maxCheckLimit:
		limit = maxCheckLimit
	}

	checks, err := s.repo.ListRecentChecks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list zone checks: %w", err)
	}
	return checks, nil
}

// GetCheck returns one recorded check, or nil when unknown
func (s *ZoneService) GetCheck(ctx context.Context, id uuid.UUID) (*models.ZoneCheck, error) {
	if s.repo == nil {
		return nil, ErrAuditDisabled
	}

	check, err := s.repo.GetCheck(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get zone check: %w", err)
	}
	return check, nil
}
