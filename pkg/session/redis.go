package session

import (
	"context"
	"errors"
	"time"

	"github.com/mentora-labs/campus-map/pkg"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "campusmap:session:"

// OpenRedis returns nil when no address is configured, which keeps
// the redis store disabled.
func OpenRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RedisStore shares page sessions between instances. Expiry is left
// to redis TTLs.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

func (s *RedisStore) Put(ctx context.Context, id string, blob []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, redisKeyPrefix+id, blob, ttl).Err(); err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "storing session %s", id)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) ([]byte, error) {
	blob, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, pkg.WrapErrorf(err, pkg.ErrNotFound, "session %s not found or expired", id)
		}
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "loading session %s", id)
	}
	return blob, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "deleting session %s", id)
	}
	return nil
}
