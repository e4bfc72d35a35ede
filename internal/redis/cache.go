package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"travel/internal/domain"
)

// CacheStore handles catalog caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// CatalogCacheTTL bounds how stale the cached catalog may get if an invalidation is lost.
const CatalogCacheTTL = 60 * time.Second

const (
	catalogCacheKey      = "cache:catalog:trips"
	catalogGenerationKey = "cache:catalog:gen"
)

// setIfGeneration stores the catalog only while the generation still matches
// the one read before the catalog was loaded.
var setIfGeneration = redis.NewScript(`
local gen = redis.call("GET", KEYS[2]) or "0"
if gen ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// GetTrips retrieves the cached catalog. A miss returns (nil, nil).
func (s *CacheStore) GetTrips(ctx context.Context) ([]domain.Trip, error) {
	data, err := s.client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var trips []domain.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// Generation returns the current catalog generation. It changes on every invalidation.
func (s *CacheStore) Generation(ctx context.Context) (int64, error) {
	gen, err := s.client.Get(ctx, catalogGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// SetTrips stores the whole catalog if no invalidation happened since gen was read.
// A skipped write is not an error.
func (s *CacheStore) SetTrips(ctx context.Context, gen int64, trips []domain.Trip) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return err
	}
	keys := []string{catalogCacheKey, catalogGenerationKey}
	return setIfGeneration.Run(ctx, s.client, keys, strconv.FormatInt(gen, 10), data, CatalogCacheTTL.Milliseconds()).Err()
}

// InvalidateTrips drops the cached catalog and bumps the generation so loads that
// started earlier cannot write their result back.
func (s *CacheStore) InvalidateTrips(ctx context.Context) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, catalogGenerationKey)
		pipe.Del(ctx, catalogCacheKey)
		return nil
	})
	return err
}
