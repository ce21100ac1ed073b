package campus

import (
	_ "embed"
)

//go:embed default_boundary.geojson
var defaultBoundaryJSON []byte

// Default returns the built-in outline of the university main campus,
// used when no boundary file is configured.
func Default() *Campus {
	c, err := FromGeoJSON(defaultBoundaryJSON)
	if err != nil {
		panic(err)
	}
	return c
}
