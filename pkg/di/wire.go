//go:build wireinject

//go:generate wire
package di

import (
	"github.com/mentora-labs/campus-map/pkg/di/config"
	shortcontext "github.com/mentora-labs/campus-map/pkg/di/context"
	locate_di "github.com/mentora-labs/campus-map/pkg/di/locate"
	logger_di "github.com/mentora-labs/campus-map/pkg/di/logger"
	mapdata_di "github.com/mentora-labs/campus-map/pkg/di/mapdata"
	maps_di "github.com/mentora-labs/campus-map/pkg/di/maps"
	session_di "github.com/mentora-labs/campus-map/pkg/di/session"
	spatial_di "github.com/mentora-labs/campus-map/pkg/di/spatial"
	mapHttp "github.com/mentora-labs/campus-map/pkg/http"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	mapdata_di.New,
	mapdata_di.ProvideCampus,
	mapdata_di.ProvideCatalog,
	maps_di.New,
	session_di.New,
	locate_di.New,
	spatial_di.New,
)

var mapSet = wire.NewSet(
	defaultSet,
	NewMapService,
	NewSessionService,
	NewMapAPIServer,
)

func InitializeMapServer() (*mapHttp.Server, func(), error) {

	panic(wire.Build(mapSet))
}
