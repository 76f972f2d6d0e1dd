// Package gazetteer resolves district names and nearest districts for the
// address-based location source.
package gazetteer

import (
	"fmt"
	"math"
	"strings"

	"delivery-zone-api/internal/models"
	"delivery-zone-api/internal/zone"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the side of the degenerate rectangle stored for each
// district centre; rtreego rejects zero-length sides.
const pointTolerance = 1e-9

// nearestCandidates is how many R-tree neighbours are re-ranked by great-circle distance.
const nearestCandidates = 4

type districtItem struct {
	district models.District
	rect     rtreego.Rect
}

func (d *districtItem) Bounds() rtreego.Rect {
	return d.rect
}

// Index is an immutable set of districts. Safe for concurrent lookups.
type Index struct {
	districts []models.District
	tree      *rtreego.Rtree
}

// NewIndex builds an index over districts. Names are matched case-insensitively.
func NewIndex(districts []models.District) (*Index, error) {
	idx := &Index{
		tree: rtreego.NewTree(2, 1, 8),
	}

	for _, d := range districts {
		if strings.TrimSpace(d.Name) == "" {
			return nil, fmt.Errorf("gazetteer: district %d has no name", d.ID)
		}
		if err := zone.ValidatePoint(zone.GeoPoint{Lat: d.Latitude, Lng: d.Longitude}); err != nil {
			return nil, fmt.Errorf("gazetteer: district %q: %w", d.Name, err)
		}

		// x = longitude, y = latitude
		rect, err := rtreego.NewRect(rtreego.Point{d.Longitude, d.Latitude}, []float64{pointTolerance, pointTolerance})
		if err != nil {
			return nil, fmt.Errorf("gazetteer: district %q: %w", d.Name, err)
		}

		d.Name = strings.ToLower(strings.TrimSpace(d.Name))
		idx.tree.Insert(&districtItem{district: d, rect: rect})
		idx.districts = append(idx.districts, d)
	}

	return idx, nil
}

// Len returns the number of indexed districts.
func (idx *Index) Len() int {
	return len(idx.districts)
}

// Districts returns a copy of the indexed districts.
func (idx *Index) Districts() []models.District {
	return append([]models.District(nil), idx.districts...)
}

// Match returns the district whose name occurs in address. When several
// names occur the longest one wins, so a district is never shadowed by a
// shorter name it contains.
func (idx *Index) Match(address string) (models.District, bool) {
	text := strings.ToLower(address)

	var best models.District
	found := false
	for _, d := range idx.districts {
		if !strings.Contains(text, d.Name) {
			continue
		}
		if !found || len(d.Name) > len(best.Name) {
			best, found = d, true
		}
	}
	return best, found
}

// Nearest returns the district closest to p by great-circle distance.
func (idx *Index) Nearest(p zone.GeoPoint) (models.District, float64, bool) {
	if len(idx.districts) == 0 {
		return models.District{}, 0, false
	}

	candidates := idx.tree.NearestNeighbors(min(nearestCandidates, len(idx.districts)), rtreego.Point{p.Lng, p.Lat})

	var best models.District
	bestKm := math.Inf(1)
	for _, c := range candidates {
		item, ok := c.(*districtItem)
		if !ok {
			continue
		}
		km := zone.DistanceKm(p, Point(item.district))
		if km < bestKm {
			best, bestKm = item.district, km
		}
	}
	return best, bestKm, !math.IsInf(bestKm, 1)
}

// Point returns the centre of d.
func Point(d models.District) zone.GeoPoint {
	return zone.GeoPoint{Lat: d.Latitude, Lng: d.Longitude}
}
