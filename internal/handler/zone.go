package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"delivery-zone-api/internal/locate"
	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/service"
	"delivery-zone-api/internal/zone"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ZoneHandler handles delivery-zone requests
type ZoneHandler struct {
	service ZoneService
}

// ZoneService interface for dependency injection
type ZoneService interface {
	Zone() models.ZoneInfo
	Check(context.Context, zone.GeoPoint, string) (*models.CheckResult, error)
	Resolve(context.Context, locate.Request) (*models.CheckResult, error)
	Estimate(float64) (zone.Estimate, error)
	RecentChecks(context.Context, int) ([]models.ZoneCheck, error)
	GetCheck(context.Context, uuid.UUID) (*models.ZoneCheck, error)
}

// NewZoneHandler creates a new delivery-zone handler
func NewZoneHandler(svc ZoneService) *ZoneHandler {
	return &ZoneHandler{service: svc}
}

// Zone handles GET /delivery-zone requests
//
//	@Summary	Configured delivery zone
//	@Produce	json
//	@Success	200	{object}	models.ZoneInfo
//	@Router		/delivery-zone [get]
func (h *ZoneHandler) Zone(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Zone())
}

// Check handles GET /delivery-zone/check requests
//
//	@Summary	Check whether a point is inside the delivery zone
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lng	query		number	true	"Longitude"
//	@Success	200	{object}	models.CheckResult
//	@Failure	400	{object}	map[string]string
//	@Router		/delivery-zone/check [get]
func (h *ZoneHandler) Check(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lng'"})
		return
	}

	point, msg := parsePoint(latStr, lngStr)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	result, err := h.service.Check(c.Request.Context(), point, locate.SourceDevice)
	if err != nil {
		if errors.Is(err, zone.ErrInvalidPoint) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Resolve handles GET /delivery-zone/resolve requests
//
//	@Summary	Locate the customer from device, address or IP and check the zone
//	@Produce	json
//	@Param		lat		query		number	false	"Device latitude"
//	@Param		lng		query		number	false	"Device longitude"
//	@Param		address	query		string	false	"Manually entered address"
//	@Param		ip		query		string	false	"Client IP, defaults to the request address"
//	@Success	200		{object}	models.CheckResult
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/delivery-zone/resolve [get]
func (h *ZoneHandler) Resolve(c *gin.Context) {
	req := locate.Request{
		Address: c.Query("address"),
		IP:      c.DefaultQuery("ip", c.ClientIP()),
	}

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if (latStr == "") != (lngStr == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters 'lat' and 'lng' must be given together"})
		return
	}
	if latStr != "" {
		point, msg := parsePoint(latStr, lngStr)
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		req.Point = &point
	}

	result, err := h.service.Resolve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, zone.ErrInvalidPoint):
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		case errors.Is(err, locate.ErrNoLocation):
			c.JSON(http.StatusNotFound, gin.H{"error": "could not determine a location, please enter your address"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Estimate handles GET /delivery-zone/estimate requests
//
//	@Summary	Delivery window for a distance from the restaurant
//	@Produce	json
//	@Param		distance_km	query		number	true	"Distance in kilometres"
//	@Success	200			{object}	zone.Estimate
//	@Failure	400			{object}	map[string]string
//	@Router		/delivery-zone/estimate [get]
func (h *ZoneHandler) Estimate(c *gin.Context) {
	distStr := c.Query("distance_km")
	if distStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'distance_km'"})
		return
	}

	dist, err := strconv.ParseFloat(distStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid distance format"})
		return
	}

	estimate, err := h.service.Estimate(dist)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDistance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "distance must be a non-negative number"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, estimate)
}

func parsePoint(latStr, lngStr string) (zone.GeoPoint, string) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return zone.GeoPoint{}, "invalid latitude format"
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return zone.GeoPoint{}, "invalid longitude format"
	}

	return zone.GeoPoint{Lat: lat, Lng: lng}, ""
}
