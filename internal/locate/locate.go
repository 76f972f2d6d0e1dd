// Package locate turns whatever the customer supplied (device coordinates, a
// typed address, their IP) into a single point for the zone evaluator.
package locate

import (
	"context"
	"errors"
	"fmt"

	"delivery-zone-api/internal/zone"

	"github.com/rs/zerolog/log"
)

// ErrNoLocation is returned by a Source that has nothing to offer for a request.
var ErrNoLocation = errors.New("locate: no location available")

// Source names reported in a Resolution.
const (
	SourceDevice  = "device"
	SourceAddress = "address"
	SourceIP      = "ip"
)

// Request carries every location hint a client sent.
type Request struct {
	Point   *zone.GeoPoint
	Address string
	IP      string
}

// Resolution is the point a Chain settled on and the source that produced it.
type Resolution struct {
	Point  zone.GeoPoint `json:"point"`
	Source string        `json:"source"`
}

// Source yields a point for a request or ErrNoLocation.
type Source interface {
	Name() string
	Locate(ctx context.Context, req Request) (zone.GeoPoint, error)
}

// Chain tries sources in priority order.
type Chain struct {
	sources []Source
}

// NewChain returns a chain consulting sources in the given order.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// Resolve returns the first point any source produces. An invalid point from
// a source is the caller's error and stops the chain; other source failures
// are logged and the next source is tried.
func (c *Chain) Resolve(ctx context.Context, req Request) (Resolution, error) {
	for _, src := range c.sources {
		p, err := src.Locate(ctx, req)
		switch {
		case err == nil:
			if verr := zone.ValidatePoint(p); verr != nil {
				return Resolution{}, fmt.Errorf("locate: %s: %w", src.Name(), verr)
			}
			return Resolution{Point: p, Source: src.Name()}, nil
		case errors.Is(err, ErrNoLocation):
			continue
		case errors.Is(err, zone.ErrInvalidPoint):
			return Resolution{}, fmt.Errorf("locate: %s: %w", src.Name(), err)
		case ctx.Err() != nil:
			return Resolution{}, fmt.Errorf("locate: %w", ctx.Err())
		default:
			log.Warn().Err(err).Str("source", src.Name()).Msg("location source failed")
		}
	}
	return Resolution{}, ErrNoLocation
}

// DeviceSource passes through coordinates reported by the client's device.
type DeviceSource struct{}

func (DeviceSource) Name() string { return SourceDevice }

func (DeviceSource) Locate(_ context.Context, req Request) (zone.GeoPoint, error) {
	if req.Point == nil {
		return zone.GeoPoint{}, ErrNoLocation
	}
	if err := zone.ValidatePoint(*req.Point); err != nil {
		return zone.GeoPoint{}, err
	}
	return *req.Point, nil
}
