package zone

import "fmt"

// DeliveryPolygon is a simple polygon in the latitude/longitude plane. The
// zero value contains no points; use NewDeliveryPolygon to build one.
type DeliveryPolygon struct {
	vertices []GeoPoint
}

// NewDeliveryPolygon validates vertices and returns a polygon owning a copy of
// them. The ring may be given open or explicitly closed.
func NewDeliveryPolygon(vertices []GeoPoint) (DeliveryPolygon, error) {
	distinct := make(map[GeoPoint]struct{}, len(vertices))
	for i, v := range vertices {
		if err := ValidatePoint(v); err != nil {
			return DeliveryPolygon{}, configErrorf(fmt.Sprintf("polygon[%d]", i), "%v", err)
		}
		distinct[v] = struct{}{}
	}
	if len(distinct) < 3 {
		return DeliveryPolygon{}, configErrorf("polygon", "need at least 3 distinct vertices, got %d", len(distinct))
	}

	owned := make([]GeoPoint, len(vertices))
	copy(owned, vertices)
	return DeliveryPolygon{vertices: owned}, nil
}

// Vertices returns a copy of the polygon ring.
func (p DeliveryPolygon) Vertices() []GeoPoint {
	out := make([]GeoPoint, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Bounds returns the south-west and north-east corners of the polygon.
func (p DeliveryPolygon) Bounds() (sw, ne GeoPoint) {
	if len(p.vertices) == 0 {
		return GeoPoint{}, GeoPoint{}
	}
	sw, ne = p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		sw.Lat = min(sw.Lat, v.Lat)
		sw.Lng = min(sw.Lng, v.Lng)
		ne.Lat = max(ne.Lat, v.Lat)
		ne.Lng = max(ne.Lng, v.Lng)
	}
	return sw, ne
}

// IsPointInPolygon applies the even-odd rule with a horizontal ray cast from
// point, latitude being y and longitude x. Points lying exactly on an edge or
// vertex get whatever the strict comparisons produce.
func IsPointInPolygon(point GeoPoint, polygon DeliveryPolygon) bool {
	vs := polygon.vertices
	x, y := point.Lng, point.Lat
	inside := false

	for i, j := 0, len(vs)-1; i < len(vs); j, i = i, i+1 {
		xi, yi := vs[i].Lng, vs[i].Lat
		xj, yj := vs[j].Lng, vs[j].Lat

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}
