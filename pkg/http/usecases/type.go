package usecases

import (
	"context"
	"time"

	"github.com/mentora-labs/campus-map/pkg/geo"
	"github.com/mentora-labs/campus-map/pkg/spatial"
)

type SessionStore interface {
	Put(ctx context.Context, id string, blob []byte, ttl time.Duration) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

type Locator interface {
	Enabled() bool
	Resolve(addr string) *geo.Point
}

type NearbyIndex interface {
	Nearest(p geo.Point, k int) []spatial.Nearby
	Size() int
}
