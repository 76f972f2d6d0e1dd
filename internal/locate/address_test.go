package locate

import (
	"context"
	"testing"

	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/zone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDistrictMatcher is a mock implementation of the DistrictMatcher interface
type MockDistrictMatcher struct {
	mock.Mock
}

func (m *MockDistrictMatcher) Match(address string) (models.District, bool) {
	args := m.Called(address)
	return args.Get(0).(models.District), args.Bool(1)
}

// MockAddressCache is a mock implementation of the AddressCache interface
type MockAddressCache struct {
	mock.Mock
}

func (m *MockAddressCache) Get(ctx context.Context, address string) (zone.GeoPoint, bool, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(zone.GeoPoint), args.Bool(1), args.Error(2)
}

func (m *MockAddressCache) Set(ctx context.Context, address string, p zone.GeoPoint) error {
	args := m.Called(ctx, address, p)
	return args.Error(0)
}

var bayangol = models.District{ID: 5, Name: "баянгол", Latitude: 47.9384, Longitude: 106.9177}

func TestAddressSource_Locate(t *testing.T) {
	bayangolPoint := zone.GeoPoint{Lat: 47.9384, Lng: 106.9177}

	tests := []struct {
		name        string
		address     string
		setup       func(*MockDistrictMatcher, *MockAddressCache)
		expected    zone.GeoPoint
		expectedErr error
	}{
		{
			name:        "blank address",
			address:     "   ",
			setup:       func(*MockDistrictMatcher, *MockAddressCache) {},
			expectedErr: ErrNoLocation,
		},
		{
			name:    "cache hit skips gazetteer",
			address: "баянгол",
			setup: func(m *MockDistrictMatcher, c *MockAddressCache) {
				c.On("Get", mock.Anything, "баянгол").Return(bayangolPoint, true, nil)
			},
			expected: bayangolPoint,
		},
		{
			name:    "cache miss resolves and stores",
			address: "баянгол дүүрэг",
			setup: func(m *MockDistrictMatcher, c *MockAddressCache) {
				c.On("Get", mock.Anything, "баянгол дүүрэг").Return(zone.GeoPoint{}, false, nil)
				m.On("Match", "баянгол дүүрэг").Return(bayangol, true)
				c.On("Set", mock.Anything, "баянгол дүүрэг", bayangolPoint).Return(nil)
			},
			expected: bayangolPoint,
		},
		{
			name:    "cache failures do not block resolution",
			address: "баянгол",
			setup: func(m *MockDistrictMatcher, c *MockAddressCache) {
				c.On("Get", mock.Anything, "баянгол").Return(zone.GeoPoint{}, false, assert.AnError)
				m.On("Match", "баянгол").Return(bayangol, true)
				c.On("Set", mock.Anything, "баянгол", bayangolPoint).Return(assert.AnError)
			},
			expected: bayangolPoint,
		},
		{
			name:    "unknown address",
			address: "Дархан",
			setup: func(m *MockDistrictMatcher, c *MockAddressCache) {
				c.On("Get", mock.Anything, "Дархан").Return(zone.GeoPoint{}, false, nil)
				m.On("Match", "Дархан").Return(models.District{}, false)
			},
			expectedErr: ErrNoLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := new(MockDistrictMatcher)
			cache := new(MockAddressCache)
			tt.setup(matcher, cache)

			p, err := NewAddressSource(matcher, cache).Locate(context.Background(), Request{Address: tt.address})

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, p)
			}
			matcher.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestAddressSource_WithoutCache(t *testing.T) {
	matcher := new(MockDistrictMatcher)
	matcher.On("Match", "баянгол").Return(bayangol, true)

	p, err := NewAddressSource(matcher, nil).Locate(context.Background(), Request{Address: "баянгол"})
	require.NoError(t, err)
	assert.Equal(t, zone.GeoPoint{Lat: 47.9384, Lng: 106.9177}, p)
}
