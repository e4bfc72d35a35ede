package redis

import (
	"context"
	"time"

	"travel/internal/domain"
)

// CatalogCacheInterface defines the interface for catalog caching.
type CatalogCacheInterface interface {
	GetTrips(ctx context.Context) ([]domain.Trip, error)
	Generation(ctx context.Context) (int64, error)
	SetTrips(ctx context.Context, gen int64, trips []domain.Trip) error
	InvalidateTrips(ctx context.Context) error
}

// RevocationStoreInterface defines the interface for session token revocation.
type RevocationStoreInterface interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ChangeFeedInterface defines the interface for collection change notifications.
type ChangeFeedInterface interface {
	Publish(ctx context.Context, collection string) error
	Subscribe(ctx context.Context, collection string) (<-chan struct{}, error)
}

// IdempotencyStoreInterface defines the interface for replaying keyed responses.
type IdempotencyStoreInterface interface {
	Get(ctx context.Context, key string) (*StoredResponse, error)
	Set(ctx context.Context, key string, resp *StoredResponse, ttl time.Duration) error
}

// Ensure concrete types implement interfaces.
var (
	_ CatalogCacheInterface     = (*CacheStore)(nil)
	_ RevocationStoreInterface  = (*RevocationStore)(nil)
	_ ChangeFeedInterface       = (*ChangeFeed)(nil)
	_ IdempotencyStoreInterface = (*IdempotencyStore)(nil)
)
