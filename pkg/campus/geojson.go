package campus

import (
	"encoding/json"
	"os"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/mentora-labs/campus-map/pkg/geo"
)

// featureCollection mirrors just enough of the GeoJSON structure to
// read a boundary file. Coordinates follow the GeoJSON [lon, lat]
// order.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   geometry               `json:"geometry"`
}

type geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// FromGeoJSON builds a Campus from the first Polygon feature in a
// GeoJSON feature collection. An unclosed outer ring is closed before
// validation. The feature's "name" property becomes the campus name.
func FromGeoJSON(data []byte) (*Campus, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "parsing boundary geojson")
	}

	for _, f := range fc.Features {
		if f.Geometry.Type != "Polygon" || len(f.Geometry.Coordinates) == 0 {
			continue
		}

		outer := f.Geometry.Coordinates[0]
		ring := make([]geo.Point, 0, len(outer)+1)
		for i, pair := range outer {
			if len(pair) < 2 {
				return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
					"boundary vertex %d has %d ordinates", i, len(pair))
			}
			ring = append(ring, geo.NewPoint(pair[1], pair[0]))
		}
		if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}

		name := ""
		if v, ok := f.Properties["name"].(string); ok {
			name = v
		}
		return New(name, ring)
	}

	return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
		"boundary geojson has no polygon feature")
}

func LoadFile(path string) (*Campus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "reading boundary file %s", path)
	}
	return FromGeoJSON(data)
}
