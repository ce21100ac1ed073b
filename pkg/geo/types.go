package geo

import (
	"fmt"
	"math"
)

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewPoint(lat, lon float64) Point {
	return Point{
		Lat: lat,
		Lon: lon,
	}
}

func (p Point) IsFinite() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return false
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return false
	}
	return true
}

// FormatCoord renders one coordinate with six decimal places, the
// precision the platform stores for meeting points.
func FormatCoord(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
