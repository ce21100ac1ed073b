// Package spatial answers "which requests are near this point" for
// the map page's nearby rail.
package spatial

import (
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/geo"
)

const (
	dimensions  = 2
	minChildren = 8
	maxChildren = 16
	// tolerance fattens each point into a tiny rect, about 11 meters
	// at the equator.
	tolerance = 0.0001
)

type item struct {
	req  catalog.HelpRequest
	rect *rtreego.Rect
}

func (it *item) Bounds() *rtreego.Rect {
	return it.rect
}

// Nearby pairs a request with its distance from the query point.
type Nearby struct {
	Request    catalog.HelpRequest `json:"request"`
	DistanceKM float64             `json:"distance_km"`
}

// Index is an R-tree over request meeting points. Built once per
// catalog, safe for concurrent readers.
type Index struct {
	mu   sync.RWMutex
	tree *rtreego.Rtree
	size int
}

func NewIndex(cat *catalog.Catalog) *Index {
	idx := &Index{
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
	}
	for _, r := range cat.All() {
		pt := rtreego.Point{r.Point.Lat, r.Point.Lon}
		idx.tree.Insert(&item{
			req:  r,
			rect: pt.ToRect(tolerance),
		})
		idx.size++
	}
	return idx
}

// Nearest returns up to k requests ordered by haversine distance from
// p.
func (idx *Index) Nearest(p geo.Point, k int) []Nearby {
	if k <= 0 {
		return nil
	}

	idx.mu.RLock()
	results := idx.tree.NearestNeighbors(k, rtreego.Point{p.Lat, p.Lon})
	idx.mu.RUnlock()

	out := make([]Nearby, 0, len(results))
	for _, res := range results {
		it, ok := res.(*item)
		if !ok || it == nil {
			continue
		}
		out = append(out, Nearby{
			Request:    it.req,
			DistanceKM: geo.HaversineDistance(p.Lat, p.Lon, it.req.Point.Lat, it.req.Point.Lon),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKM < out[j].DistanceKM
	})
	return out
}

func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}
