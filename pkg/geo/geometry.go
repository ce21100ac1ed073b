package geo

import (
	"github.com/mentora-labs/campus-map/pkg"
)

// raycastEps keeps the edge-intersection denominator nonzero when an
// edge is horizontal.
const raycastEps = 1e-12

type BoundingBox struct {
	min, max []float64 // lat, lon
}

func NewBoundingBox(lats, lons []float64) BoundingBox {
	min, max := []float64{lats[0], lons[0]}, []float64{lats[0], lons[0]}
	for i := 1; i < len(lats); i++ {
		if lats[i] < min[0] {
			min[0] = lats[i]
		}
		if lats[i] > max[0] {
			max[0] = lats[i]
		}
		if lons[i] < min[1] {
			min[1] = lons[i]
		}
		if lons[i] > max[1] {
			max[1] = lons[i]
		}
	}
	return BoundingBox{
		min: min,
		max: max,
	}
}

func (bb *BoundingBox) GetMin() []float64 {
	return bb.min
}

func (bb *BoundingBox) GetMax() []float64 {
	return bb.max
}

func (bb *BoundingBox) Contains(lat, lon float64) bool {
	if lat < bb.min[0] || lat > bb.max[0] {
		return false
	}
	if lon < bb.min[1] || lon > bb.max[1] {
		return false
	}
	return true
}

func (bb *BoundingBox) Center() Point {
	return NewPoint((bb.min[0]+bb.max[0])/2.0, (bb.min[1]+bb.max[1])/2.0)
}

// Polygon is a simple closed ring. The first and last vertices must be
// identical; edges connect consecutive vertices.
type Polygon struct {
	lats, lons []float64
	bound      BoundingBox
}

func NewPolygon(ring []Point) (*Polygon, error) {
	if len(ring) < 4 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"polygon ring needs at least 4 vertices, got %d", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"polygon ring is not closed")
	}
	lats := make([]float64, len(ring))
	lons := make([]float64, len(ring))
	for i, v := range ring {
		if !v.IsFinite() {
			return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
				"polygon vertex %d is not a finite coordinate", i)
		}
		lats[i] = v.Lat
		lons[i] = v.Lon
	}
	return &Polygon{
		lats:  lats,
		lons:  lons,
		bound: NewBoundingBox(lats, lons),
	}, nil
}

func (pg *Polygon) Bound() BoundingBox {
	return pg.bound
}

func (pg *Polygon) Ring() []Point {
	ring := make([]Point, len(pg.lats))
	for i := range pg.lats {
		ring[i] = NewPoint(pg.lats[i], pg.lons[i])
	}
	return ring
}

// Contains reports whether the point lies strictly inside the ring,
// by casting a ray toward positive longitude and counting edge
// crossings. Points exactly on a horizontal edge resolve by the
// raycastEps approximation of that edge's slope.
func (pg *Polygon) Contains(lat, lon float64) bool {
	if !pg.bound.Contains(lat, lon) {
		return false
	}
	inside := false
	for i := 0; i+1 < len(pg.lats); i++ {
		latI, lonI := pg.lats[i], pg.lons[i]
		latJ, lonJ := pg.lats[i+1], pg.lons[i+1]
		if (latI > lat) != (latJ > lat) &&
			lon < (lonJ-lonI)*(lat-latI)/(latJ-latI+raycastEps)+lonI {
			inside = !inside
		}
	}
	return inside
}
