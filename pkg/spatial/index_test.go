package spatial

import (
	"testing"

	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	cat := catalog.New([]catalog.HelpRequest{
		{ID: "near", Title: "Closest request", Point: geo.NewPoint(9.7746, 118.7311)},
		{ID: "mid", Title: "Middle request", Point: geo.NewPoint(9.7760, 118.7330)},
		{ID: "far", Title: "Farthest request", Point: geo.NewPoint(9.7790, 118.7360)},
	})
	return NewIndex(cat)
}

func TestNearest(t *testing.T) {
	idx := testIndex(t)
	from := geo.NewPoint(9.7745, 118.7310)

	t.Run("ordered by distance", func(t *testing.T) {
		got := idx.Nearest(from, 3)
		assert.Len(t, got, 3)
		assert.Equal(t, "near", got[0].Request.ID)
		assert.Equal(t, "mid", got[1].Request.ID)
		assert.Equal(t, "far", got[2].Request.ID)
		assert.Less(t, got[0].DistanceKM, got[1].DistanceKM)
		assert.Less(t, got[1].DistanceKM, got[2].DistanceKM)
	})

	t.Run("k over the index size", func(t *testing.T) {
		got := idx.Nearest(from, 10)
		assert.Len(t, got, 3)
	})

	t.Run("k of one", func(t *testing.T) {
		got := idx.Nearest(from, 1)
		assert.Len(t, got, 1)
		assert.Equal(t, "near", got[0].Request.ID)
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Nil(t, idx.Nearest(from, 0))
		assert.Nil(t, idx.Nearest(from, -3))
	})
}

func TestEmptyIndex(t *testing.T) {
	idx := NewIndex(catalog.New(nil))
	assert.Equal(t, 0, idx.Size())
	assert.Empty(t, idx.Nearest(geo.NewPoint(9.7745, 118.7310), 5))
}

func TestSize(t *testing.T) {
	assert.Equal(t, 3, testIndex(t).Size())
}
