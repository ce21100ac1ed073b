package locate_di

import (
	"github.com/mentora-labs/campus-map/pkg/http/usecases"
	"github.com/mentora-labs/campus-map/pkg/locate"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New(log *zap.Logger) (usecases.Locator, func(), error) {
	viper.SetDefault("GEOIP_DB", "")

	resolver, err := locate.NewResolver(log, viper.GetString("GEOIP_DB"))
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = resolver.Close()
	}

	return resolver, cleanup, nil
}
