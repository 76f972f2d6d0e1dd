package locate

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"delivery-zone-api/internal/zone"
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// IPSource asks an ip-api compatible service for a coarse position of the
// client's public IP.
type IPSource struct {
	client  HTTPDoer
	baseURL string
	timeout time.Duration
}

// NewIPSource creates an IP source querying baseURL + ip. A zero timeout
// leaves the deadline to ctx.
func NewIPSource(client HTTPDoer, baseURL string, timeout time.Duration) *IPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &IPSource{client: client, baseURL: strings.TrimRight(baseURL, "/") + "/", timeout: timeout}
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (s *IPSource) Name() string { return SourceIP }

func (s *IPSource) Locate(ctx context.Context, req Request) (zone.GeoPoint, error) {
	ip := net.ParseIP(strings.TrimSpace(req.IP))
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return zone.GeoPoint{}, ErrNoLocation
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+url.PathEscape(ip.String()), nil)
	if err != nil {
		return zone.GeoPoint{}, fmt.Errorf("locate: failed to build ip lookup request: %w", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return zone.GeoPoint{}, fmt.Errorf("locate: ip lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zone.GeoPoint{}, fmt.Errorf("locate: ip lookup returned status %d", resp.StatusCode)
	}

	var body ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return zone.GeoPoint{}, fmt.Errorf("locate: failed to decode ip lookup response: %w", err)
	}
	if body.Status != "success" {
		return zone.GeoPoint{}, fmt.Errorf("%w: ip lookup: %s", ErrNoLocation, body.Message)
	}

	return zone.GeoPoint{Lat: body.Lat, Lng: body.Lon}, nil
}
