// Package campus holds the geofence every meeting point is validated
// against. The boundary is loaded once at startup and never mutated.
package campus

import (
	"github.com/mentora-labs/campus-map/pkg/geo"
)

const DefaultName = "Palawan State University"

type Campus struct {
	name     string
	boundary *geo.Polygon
	center   geo.Point
}

func New(name string, ring []geo.Point) (*Campus, error) {
	poly, err := geo.NewPolygon(ring)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultName
	}
	bound := poly.Bound()
	return &Campus{
		name:     name,
		boundary: poly,
		center:   bound.Center(),
	}, nil
}

func (c *Campus) Name() string {
	return c.name
}

func (c *Campus) Center() geo.Point {
	return c.center
}

func (c *Campus) Bound() geo.BoundingBox {
	return c.boundary.Bound()
}

func (c *Campus) Ring() []geo.Point {
	return c.boundary.Ring()
}

func (c *Campus) Contains(p geo.Point) bool {
	return c.boundary.Contains(p.Lat, p.Lon)
}

// DistanceFromCenterKM is used for the "x.x km away" labels on request
// cards when no user position is known.
func (c *Campus) DistanceFromCenterKM(p geo.Point) float64 {
	return geo.HaversineDistance(c.center.Lat, c.center.Lon, p.Lat, p.Lon)
}
