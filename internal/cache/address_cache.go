package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"delivery-zone-api/internal/zone"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "address:"

// AddressCache stores resolved manual addresses so repeated lookups skip the gazetteer.
type AddressCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewAddressCache creates a cache writing entries with the given TTL. A zero
// TTL keeps entries until evicted.
func NewAddressCache(client redis.Cmdable, ttl time.Duration) *AddressCache {
	return &AddressCache{client: client, ttl: ttl}
}

// Key normalises an address into its cache key.
func Key(address string) string {
	return keyPrefix + strings.Join(strings.Fields(strings.ToLower(address)), " ")
}

// Get returns the cached point for address. A miss is reported as ok=false
// with a nil error.
func (c *AddressCache) Get(ctx context.Context, address string) (zone.GeoPoint, bool, error) {
	raw, err := c.client.Get(ctx, Key(address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zone.GeoPoint{}, false, nil
		}
		return zone.GeoPoint{}, false, fmt.Errorf("cache: failed to get address: %w", err)
	}

	var p zone.GeoPoint
	if err := json.Unmarshal(raw, &p); err != nil {
		return zone.GeoPoint{}, false, fmt.Errorf("cache: failed to decode address entry: %w", err)
	}
	return p, true, nil
}

// Set stores the resolved point for address.
func (c *AddressCache) Set(ctx context.Context, address string, p zone.GeoPoint) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache: failed to encode address entry: %w", err)
	}
	if err := c.client.Set(ctx, Key(address), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set address: %w", err)
	}
	return nil
}
