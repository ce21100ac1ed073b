package http_router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mentora-labs/campus-map/pkg/http/http-router/controllers"
	router_helper "github.com/mentora-labs/campus-map/pkg/http/http-router/router-helper"
	http_server "github.com/mentora-labs/campus-map/pkg/http/server"
	"github.com/mentora-labs/campus-map/pkg/metrics"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	mapService controllers.MapService,
	sessionService controllers.SessionService,
) error {
	log.Info("Run httprouter API")

	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	group := router_helper.NewRouteGroup(router, "/api")

	mapRoutes := controllers.New(mapService, sessionService, log)

	mapRoutes.Routes(group)

	router.Handler(http.MethodGet, "/metrics", metrics.Handler())
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	mainMwChain := alice.New(corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(log), Metrics).Then(router)

	srv := http_server.New(ctx, gzhttp.GzipHandler(mainMwChain), config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	return http_server.Run(ctx, srv)
}
