package di

import (
	"context"

	"github.com/mentora-labs/campus-map/pkg/campus"
	"github.com/mentora-labs/campus-map/pkg/catalog"
	mapHttp "github.com/mentora-labs/campus-map/pkg/http"
	"github.com/mentora-labs/campus-map/pkg/http/http-router/controllers"
	"github.com/mentora-labs/campus-map/pkg/http/usecases"
	"github.com/mentora-labs/campus-map/pkg/view"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func NewMapService(log *zap.Logger, cam *campus.Campus, cat *catalog.Catalog,
	index usecases.NearbyIndex, loader *view.Loader) controllers.MapService {
	return usecases.NewMapService(log, cam, cat, index, loader, nil)
}

func NewSessionService(log *zap.Logger, cam *campus.Campus, cat *catalog.Catalog,
	store usecases.SessionStore, locator usecases.Locator) controllers.SessionService {
	viper.SetDefault("SESSION_TTL", "30m")

	return usecases.NewSessionService(log, cam, cat, store, locator,
		viper.GetDuration("SESSION_TTL"), nil)
}

func NewMapAPIServer(ctx context.Context, log *zap.Logger,
	mapService controllers.MapService, sessionService controllers.SessionService) (*mapHttp.Server, error) {
	api := mapHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, mapService, sessionService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
