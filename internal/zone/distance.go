package zone

import "github.com/umahmood/haversine"

// EarthRadiusKm is the mean Earth radius the haversine package uses.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b in kilometres.
func DistanceKm(a, b GeoPoint) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lng},
		haversine.Coord{Lat: b.Lat, Lon: b.Lng},
	)
	return km
}
