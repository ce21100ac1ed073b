package http

import (
	"context"

	http_router "github.com/mentora-labs/campus-map/pkg/http/http-router"
	"github.com/mentora-labs/campus-map/pkg/http/http-router/controllers"
	http_server "github.com/mentora-labs/campus-map/pkg/http/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger

	g *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	mapService controllers.MapService,
	sessionService controllers.SessionService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 8080)

	viper.SetDefault("API_TIMEOUT", "60s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	g := &errgroup.Group{}

	g.Go(func() error {
		return server.Run(
			ctx, config, log, mapService, sessionService,
		)
	})

	s.g = g

	return s, nil

}

// Wait blocks until the API loop returns.
func (s *Server) Wait() error {
	return s.g.Wait()
}
