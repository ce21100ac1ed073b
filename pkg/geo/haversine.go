package geo

import "math"

const (
	earthRadiusKM = 6371.0
	kRad          = math.Pi / 180.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// HaversineDistance returns the great-circle distance in kilometers
// between two coordinates given in decimal degrees.
func HaversineDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	latOneRad, lonOneRad := latOne*kRad, lonOne*kRad
	latTwoRad, lonTwoRad := latTwo*kRad, lonTwo*kRad

	sqrtHav := math.Sqrt(havFunction(latOneRad-latTwoRad) +
		math.Cos(latOneRad)*math.Cos(latTwoRad)*havFunction(lonOneRad-lonTwoRad))
	return earthRadiusKM * 2.0 * math.Asin(sqrtHav)
}
