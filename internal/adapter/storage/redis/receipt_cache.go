package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ReceiptCache implements ports.ReceiptCache using Redis. Receipts are
// terminal snapshots; the database stays the source of truth and the
// cache only serves receipt re-display.
type ReceiptCache struct {
	client *goredis.Client
	prefix string
}

// NewReceiptCache creates a new Redis-backed receipt cache.
func NewReceiptCache(client *goredis.Client) *ReceiptCache {
	return &ReceiptCache{
		client: client,
		prefix: "receipt:",
	}
}

// Get retrieves a cached receipt by transaction ID.
// Returns nil, nil if the key does not exist.
func (c *ReceiptCache) Get(ctx context.Context, transactionID string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+transactionID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis receipt get: %w", err)
	}
	return val, nil
}

// Set stores a receipt payload with TTL.
func (c *ReceiptCache) Set(ctx context.Context, transactionID string, payload []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+transactionID, payload, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis receipt set: %w", err)
	}
	return nil
}
