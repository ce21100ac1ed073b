package maps_di

import (
	"github.com/mentora-labs/campus-map/pkg/view"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func New(log *zap.Logger) *view.Loader {
	viper.SetDefault("MAPS_API_KEY", "")
	return view.NewLoader(log, viper.GetString("MAPS_API_KEY"))
}
