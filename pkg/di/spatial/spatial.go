package spatial_di

import (
	"github.com/mentora-labs/campus-map/pkg/catalog"
	"github.com/mentora-labs/campus-map/pkg/http/usecases"
	"github.com/mentora-labs/campus-map/pkg/spatial"
)

func New(cat *catalog.Catalog) usecases.NearbyIndex {
	return spatial.NewIndex(cat)
}
