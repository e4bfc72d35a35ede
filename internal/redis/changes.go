package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const changeChannelPrefix = "changes:"

// ChangeFeed announces collection writes over Redis pub/sub so every server
// instance can refresh its subscribers.
type ChangeFeed struct {
	client *redis.Client
}

// NewChangeFeed creates a new ChangeFeed.
func NewChangeFeed(client *redis.Client) *ChangeFeed {
	return &ChangeFeed{client: client}
}

// Publish announces that collection changed.
func (f *ChangeFeed) Publish(ctx context.Context, collection string) error {
	return f.client.Publish(ctx, changeChannelPrefix+collection, "1").Err()
}

// Subscribe returns a channel that receives a value after every change to collection.
// Bursts are coalesced. The channel is closed when ctx is done.
func (f *ChangeFeed) Subscribe(ctx context.Context, collection string) (<-chan struct{}, error) {
	pubsub := f.client.Subscribe(ctx, changeChannelPrefix+collection)
	// Wait for the subscription to be confirmed so no change is missed after we return.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s changes: %w", collection, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
