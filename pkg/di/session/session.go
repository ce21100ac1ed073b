package session_di

import (
	"context"
	"fmt"

	"github.com/mentora-labs/campus-map/pkg/http/usecases"
	"github.com/mentora-labs/campus-map/pkg/session"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the session store named by SESSION_STORE: the in-process
// store for single-node runs, redis when sessions must survive
// restarts or be shared between replicas.
func New(ctx context.Context, log *zap.Logger) (usecases.SessionStore, func(), error) {
	viper.SetDefault("SESSION_STORE", "memory")
	viper.SetDefault("SESSION_SWEEP", "1m")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	switch backend := viper.GetString("SESSION_STORE"); backend {
	case "redis":
		client := session.OpenRedis(viper.GetString("REDIS_ADDR"),
			viper.GetString("REDIS_PASSWORD"), viper.GetInt("REDIS_DB"))
		if client == nil {
			return nil, nil, fmt.Errorf("SESSION_STORE is redis but REDIS_ADDR is empty")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		log.Info("session store ready", zap.String("backend", "redis"))
		cleanup := func() {
			_ = client.Close()
		}
		return session.NewRedisStore(client), cleanup, nil
	case "memory":
		store := session.NewMemoryStore(viper.GetDuration("SESSION_SWEEP"))
		log.Info("session store ready", zap.String("backend", "memory"))
		cleanup := func() {
			store.Close()
		}
		return store, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown SESSION_STORE %q", backend)
	}
}
