package locate

import (
	"context"
	"strings"

	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/zone"

	"github.com/rs/zerolog/log"
)

// DistrictMatcher finds the district named in an address.
type DistrictMatcher interface {
	Match(address string) (models.District, bool)
}

// AddressCache remembers resolved addresses.
type AddressCache interface {
	Get(ctx context.Context, address string) (zone.GeoPoint, bool, error)
	Set(ctx context.Context, address string, p zone.GeoPoint) error
}

// AddressSource resolves manually entered addresses to their district centre.
type AddressSource struct {
	districts DistrictMatcher
	cache     AddressCache
}

// NewAddressSource creates an address source. cache may be nil.
func NewAddressSource(districts DistrictMatcher, cache AddressCache) *AddressSource {
	return &AddressSource{districts: districts, cache: cache}
}

func (s *AddressSource) Name() string { return SourceAddress }

func (s *AddressSource) Locate(ctx context.Context, req Request) (zone.GeoPoint, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return zone.GeoPoint{}, ErrNoLocation
	}

	if s.cache != nil {
		p, ok, err := s.cache.Get(ctx, address)
		if err != nil {
			log.Warn().Err(err).Msg("address cache lookup failed")
		} else if ok {
			return p, nil
		}
	}

	d, ok := s.districts.Match(address)
	if !ok {
		return zone.GeoPoint{}, ErrNoLocation
	}
	p := zone.GeoPoint{Lat: d.Latitude, Lng: d.Longitude}

	if s.cache != nil {
		if err := s.cache.Set(ctx, address, p); err != nil {
			log.Warn().Err(err).Str("district", d.Name).Msg("address cache write failed")
		}
	}
	return p, nil
}
