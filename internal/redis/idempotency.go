package redis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "idempotency:"

// StoredResponse is a response replayed for a repeated idempotency key.
// RequestHash identifies the request body the response was produced for.
type StoredResponse struct {
	RequestHash string          `json:"request_hash"`
	StatusCode  int             `json:"status_code"`
	Body        json.RawMessage `json:"body"`
	Headers     http.Header     `json:"headers"`
}

// IdempotencyStore keeps responses of keyed requests in Redis.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the stored response for key, or (nil, nil) when there is none.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (*StoredResponse, error) {
	data, err := s.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var resp StoredResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Set stores the response for key.
func (s *IdempotencyStore) Set(ctx context.Context, key string, resp *StoredResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, idempotencyPrefix+key, data, ttl).Err()
}
