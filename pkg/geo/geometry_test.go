package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

// rough outline of the university main campus in Puerto Princesa,
// closed ring, counter-clockwise.
var campusRing = []Point{
	{Lat: 9.7702, Lon: 118.7268},
	{Lat: 9.7698, Lon: 118.7335},
	{Lat: 9.7735, Lon: 118.7372},
	{Lat: 9.7782, Lon: 118.7365},
	{Lat: 9.7795, Lon: 118.7302},
	{Lat: 9.7760, Lon: 118.7258},
	{Lat: 9.7702, Lon: 118.7268},
}

func TestPolygonContains(t *testing.T) {
	poly, err := NewPolygon(campusRing)
	assert.Nil(t, err)

	t.Run("points inside the campus", func(t *testing.T) {
		inside := []Point{
			{Lat: 9.7745, Lon: 118.7310}, // near the center
			{Lat: 9.7720, Lon: 118.7300},
			{Lat: 9.7770, Lon: 118.7330},
		}
		for _, p := range inside {
			assert.True(t, poly.Contains(p.Lat, p.Lon))
		}
	})

	t.Run("points outside the campus", func(t *testing.T) {
		outside := []Point{
			{Lat: 9.7408, Lon: 118.7566}, // downtown Puerto Princesa
			{Lat: 9.7746, Lon: 118.7500}, // east of the fence
			{Lat: 9.8000, Lon: 118.7310}, // north of the fence
		}
		for _, p := range outside {
			assert.False(t, poly.Contains(p.Lat, p.Lon))
		}
	})

	t.Run("point far outside the bounding box", func(t *testing.T) {
		assert.False(t, poly.Contains(-7.7829, 110.3671)) // Yogyakarta
	})

	t.Run("sampled grid strictly inside a rectangle", func(t *testing.T) {
		rect, err := NewPolygon([]Point{
			{Lat: 9.7700, Lon: 118.7300},
			{Lat: 9.7700, Lon: 118.7400},
			{Lat: 9.7800, Lon: 118.7400},
			{Lat: 9.7800, Lon: 118.7300},
			{Lat: 9.7700, Lon: 118.7300},
		})
		assert.Nil(t, err)

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			lat := 9.7701 + rng.Float64()*0.0098
			lon := 118.7301 + rng.Float64()*0.0098
			assert.True(t, rect.Contains(lat, lon))
		}
	})

	t.Run("horizontal edges do not blow up the cast", func(t *testing.T) {
		rect, err := NewPolygon([]Point{
			{Lat: 9.7700, Lon: 118.7300},
			{Lat: 9.7700, Lon: 118.7400},
			{Lat: 9.7800, Lon: 118.7400},
			{Lat: 9.7800, Lon: 118.7300},
			{Lat: 9.7700, Lon: 118.7300},
		})
		assert.Nil(t, err)

		assert.True(t, rect.Contains(9.7750, 118.7350))
		assert.False(t, rect.Contains(9.7850, 118.7350))
		assert.False(t, rect.Contains(9.7650, 118.7350))
	})
}

func TestNewPolygonValidation(t *testing.T) {
	t.Run("too few vertices", func(t *testing.T) {
		_, err := NewPolygon([]Point{
			{Lat: 9.77, Lon: 118.73},
			{Lat: 9.78, Lon: 118.74},
			{Lat: 9.77, Lon: 118.73},
		})
		assert.NotNil(t, err)
	})

	t.Run("ring not closed", func(t *testing.T) {
		_, err := NewPolygon([]Point{
			{Lat: 9.77, Lon: 118.73},
			{Lat: 9.78, Lon: 118.73},
			{Lat: 9.78, Lon: 118.74},
			{Lat: 9.77, Lon: 118.74},
		})
		assert.NotNil(t, err)
	})
}

func TestBoundingBox(t *testing.T) {
	lats := []float64{9.7702, 9.7698, 9.7795}
	lons := []float64{118.7268, 118.7335, 118.7302}
	bb := NewBoundingBox(lats, lons)

	t.Run("contains interior point", func(t *testing.T) {
		assert.True(t, bb.Contains(9.7750, 118.7300))
	})

	t.Run("rejects exterior point", func(t *testing.T) {
		assert.False(t, bb.Contains(9.7900, 118.7300))
	})

	t.Run("center sits between extremes", func(t *testing.T) {
		c := bb.Center()
		assert.InDelta(t, 9.77465, c.Lat, 1e-9)
		assert.InDelta(t, 118.73015, c.Lon, 1e-9)
	})
}

func TestHaversineDistance(t *testing.T) {
	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		d := HaversineDistance(0, 0, 0, 1)
		assert.InDelta(t, 111.19, d, 0.2)
	})

	t.Run("zero distance", func(t *testing.T) {
		d := HaversineDistance(9.7745, 118.7310, 9.7745, 118.7310)
		assert.InDelta(t, 0, d, 1e-9)
	})
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "9.774500", FormatCoord(9.7745))
	assert.Equal(t, "118.731000", FormatCoord(118.731))
	assert.Equal(t, "-7.782178", FormatCoord(-7.7821777971150485))
}
