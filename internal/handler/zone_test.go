package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-zone-api/internal/locate"
	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/service"
	"delivery-zone-api/internal/zone"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockZoneService is a mock implementation of the ZoneService interface
type MockZoneService struct {
	mock.Mock
}

func (m *MockZoneService) Zone() models.ZoneInfo {
	args := m.Called()
	return args.Get(0).(models.ZoneInfo)
}

func (m *MockZoneService) Check(ctx context.Context, p zone.GeoPoint, source string) (*models.CheckResult, error) {
	args := m.Called(ctx, p, source)
	return args.Get(0).(*models.CheckResult), args.Error(1)
}

func (m *MockZoneService) Resolve(ctx context.Context, req locate.Request) (*models.CheckResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*models.CheckResult), args.Error(1)
}

func (m *MockZoneService) Estimate(d float64) (zone.Estimate, error) {
	args := m.Called(d)
	return args.Get(0).(zone.Estimate), args.Error(1)
}

func (m *MockZoneService) RecentChecks(ctx context.Context, limit int) ([]models.ZoneCheck, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.ZoneCheck), args.Error(1)
}

func (m *MockZoneService) GetCheck(ctx context.Context, id uuid.UUID) (*models.ZoneCheck, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.ZoneCheck), args.Error(1)
}

var noResult = (*models.CheckResult)(nil)

func errorBody(msg string) map[string]interface{} {
	return map[string]interface{}{"error": msg}
}

func serve(t *testing.T, svc ZoneService, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, NewZoneHandler(svc))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestZoneHandler_Check(t *testing.T) {
	inZone := &models.CheckResult{
		ID:         uuid.MustParse("5b0f1c1e-8a53-4d5e-9a57-0d9c2f0f7a11"),
		Point:      zone.GeoPoint{Lat: 47.9184, Lng: 106.9177},
		Source:     locate.SourceDevice,
		InZone:     true,
		DistanceKm: 0,
		Estimate:   zone.Estimate{MinMinutes: 15, MaxMinutes: 20},
		District:   "сүхбаатар",
	}

	tests := []struct {
		name           string
		target         string
		point          *zone.GeoPoint
		mockResult     *models.CheckResult
		mockError      error
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:           "missing query parameters",
			target:         "/delivery-zone/check?lat=47.9",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("missing required query parameters 'lat' and 'lng'"),
		},
		{
			name:           "invalid latitude",
			target:         "/delivery-zone/check?lat=north&lng=106.9",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("invalid latitude format"),
		},
		{
			name:           "invalid longitude",
			target:         "/delivery-zone/check?lat=47.9&lng=east",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("invalid longitude format"),
		},
		{
			name:           "in zone",
			target:         "/delivery-zone/check?lat=47.9184&lng=106.9177",
			point:          &zone.GeoPoint{Lat: 47.9184, Lng: 106.9177},
			mockResult:     inZone,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"id":          "5b0f1c1e-8a53-4d5e-9a57-0d9c2f0f7a11",
				"point":       map[string]interface{}{"lat": 47.9184, "lng": 106.9177},
				"source":      "device",
				"in_zone":     true,
				"distance_km": 0.0,
				"estimate":    map[string]interface{}{"min_minutes": 15.0, "max_minutes": 20.0, "open_ended": false},
				"district":    "сүхбаатар",
			},
		},
		{
			name:           "out of range",
			target:         "/delivery-zone/check?lat=95&lng=106.9",
			point:          &zone.GeoPoint{Lat: 95, Lng: 106.9},
			mockResult:     noResult,
			mockError:      zone.ErrInvalidPoint,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("coordinates out of range"),
		},
		{
			name:           "service error",
			target:         "/delivery-zone/check?lat=47.9&lng=106.9",
			point:          &zone.GeoPoint{Lat: 47.9, Lng: 106.9},
			mockResult:     noResult,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   errorBody("internal server error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockZoneService)
			if tt.point != nil {
				mockSvc.On("Check", mock.Anything, *tt.point, locate.SourceDevice).Return(tt.mockResult, tt.mockError)
			}

			w := serve(t, mockSvc, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decode(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestZoneHandler_Resolve(t *testing.T) {
	result := &models.CheckResult{Source: locate.SourceAddress, InZone: false, DistanceKm: 2.22}

	tests := []struct {
		name           string
		target         string
		request        *locate.Request
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "device point",
			target:         "/delivery-zone/resolve?lat=47.92&lng=106.92",
			request:        &locate.Request{Point: &zone.GeoPoint{Lat: 47.92, Lng: 106.92}, IP: "192.0.2.1"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "address with explicit ip",
			target:         "/delivery-zone/resolve?address=%D0%B1%D0%B0%D1%8F%D0%BD%D0%B3%D0%BE%D0%BB&ip=202.131.0.10",
			request:        &locate.Request{Address: "баянгол", IP: "202.131.0.10"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "half a point",
			target:         "/delivery-zone/resolve?lat=47.92",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "query parameters 'lat' and 'lng' must be given together",
		},
		{
			name:           "unparseable point",
			target:         "/delivery-zone/resolve?lat=47.92&lng=x",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid longitude format",
		},
		{
			name:           "nothing resolves",
			target:         "/delivery-zone/resolve",
			request:        &locate.Request{IP: "192.0.2.1"},
			mockError:      locate.ErrNoLocation,
			expectedStatus: http.StatusNotFound,
			expectedError:  "could not determine a location, please enter your address",
		},
		{
			name:           "invalid point",
			target:         "/delivery-zone/resolve?lat=-95&lng=10",
			request:        &locate.Request{Point: &zone.GeoPoint{Lat: -95, Lng: 10}, IP: "192.0.2.1"},
			mockError:      zone.ErrInvalidPoint,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "coordinates out of range",
		},
		{
			name:           "service error",
			target:         "/delivery-zone/resolve",
			request:        &locate.Request{IP: "192.0.2.1"},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockZoneService)
			if tt.request != nil {
				ret := result
				if tt.mockError != nil {
					ret = noResult
				}
				mockSvc.On("Resolve", mock.Anything, *tt.request).Return(ret, tt.mockError)
			}

			w := serve(t, mockSvc, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decode(t, w)
			if tt.expectedError != "" {
				assert.Equal(t, errorBody(tt.expectedError), body)
			} else {
				assert.Equal(t, "address", body["source"])
				assert.Equal(t, 2.22, body["distance_km"])
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestZoneHandler_Estimate(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		distance       *float64
		mockEstimate   zone.Estimate
		mockError      error
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name:           "missing distance",
			target:         "/delivery-zone/estimate",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("missing required query parameter 'distance_km'"),
		},
		{
			name:           "bad format",
			target:         "/delivery-zone/estimate?distance_km=far",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("invalid distance format"),
		},
		{
			name:           "bucketed",
			target:         "/delivery-zone/estimate?distance_km=0.7",
			distance:       ptr(0.7),
			mockEstimate:   zone.Estimate{MinMinutes: 20, MaxMinutes: 25},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"min_minutes": 20.0, "max_minutes": 25.0, "open_ended": false},
		},
		{
			name:           "open ended",
			target:         "/delivery-zone/estimate?distance_km=9",
			distance:       ptr(9),
			mockEstimate:   zone.Estimate{MinMinutes: 45, OpenEnded: true},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"min_minutes": 45.0, "open_ended": true},
		},
		{
			name:           "negative distance",
			target:         "/delivery-zone/estimate?distance_km=-1",
			distance:       ptr(-1),
			mockError:      service.ErrInvalidDistance,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   errorBody("distance must be a non-negative number"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockZoneService)
			if tt.distance != nil {
				mockSvc.On("Estimate", *tt.distance).Return(tt.mockEstimate, tt.mockError)
			}

			w := serve(t, mockSvc, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decode(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestZoneHandler_Zone(t *testing.T) {
	mockSvc := new(MockZoneService)
	mockSvc.On("Zone").Return(models.ZoneInfo{
		Restaurant:  zone.GeoPoint{Lat: 47.9184, Lng: 106.9177},
		Polygon:     []zone.GeoPoint{{Lat: 1, Lng: 1}, {Lat: 1, Lng: 2}, {Lat: 2, Lng: 2}},
		ETABuckets:  []zone.Bucket{{MaxDistanceKm: 0.5, MinMinutes: 15, MaxMinutes: 20}},
		ETAFallback: zone.Fallback{MinMinutes: 20, MaxMinutes: 25},
	})

	w := serve(t, mockSvc, "/delivery-zone")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, map[string]interface{}{"lat": 47.9184, "lng": 106.9177}, body["restaurant"])
	assert.Len(t, body["polygon"], 3)
	assert.Len(t, body["eta_buckets"], 1)
	mockSvc.AssertExpectations(t)
}

func ptr(f float64) *float64 { return &f }
