package mapdata_di

import (
	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Data bundles the loaded campus and catalog so both come from the
// same source.
type Data struct {
	Campus  *campus.Campus
	Catalog *catalog.Catalog
}

// New loads the map data. A precomputed bundle wins; otherwise the
// campus comes from CAMPUS_FILE or the embedded default and the
// catalog from CATALOG_FILE or stays empty.
func New(log *zap.Logger) (*Data, error) {
	viper.SetDefault("CATALOG_BUNDLE", "")
	viper.SetDefault("CAMPUS_FILE", "")
	viper.SetDefault("CATALOG_FILE", "")
	viper.SetDefault("BASE_URL", "")

	detailBase := viper.GetString("BASE_URL")

	if path := viper.GetString("CATALOG_BUNDLE"); path != "" {
		bundle, err := catalog.ReadBundleFile(path)
		if err != nil {
			return nil, err
		}
		cam, err := campus.New(bundle.CampusName, bundle.Ring)
		if err != nil {
			return nil, err
		}
		for i := range bundle.Requests {
			bundle.Requests[i].DetailURL = catalog.ResolveDetailURL(detailBase, bundle.Requests[i].DetailURL)
		}
		log.Info("map data loaded from bundle",
			zap.String("path", path),
			zap.String("campus", cam.Name()),
			zap.Int("requests", len(bundle.Requests)),
			zap.Time("built_at", bundle.BuiltAt))
		return &Data{Campus: cam, Catalog: catalog.New(bundle.Requests)}, nil
	}

	cam := campus.Default()
	if path := viper.GetString("CAMPUS_FILE"); path != "" {
		loaded, err := campus.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cam = loaded
	}

	cat := catalog.New(nil)
	if path := viper.GetString("CATALOG_FILE"); path != "" {
		center := cam.Center()
		loaded, err := catalog.LoadFile(log, path, catalog.Options{Center: &center, DetailBase: detailBase})
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	log.Info("map data loaded",
		zap.String("campus", cam.Name()),
		zap.Int("requests", cat.Len()))
	return &Data{Campus: cam, Catalog: cat}, nil
}

func ProvideCampus(d *Data) *campus.Campus { return d.Campus }

func ProvideCatalog(d *Data) *catalog.Catalog { return d.Catalog }
