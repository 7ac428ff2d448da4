package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"card-payment-service/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// WalletCache implements ports.WalletCache using Redis. Entries are JSON
// snapshots of gateway wallet fetches, bounded by TTL.
type WalletCache struct {
	client *goredis.Client
	prefix string
}

// NewWalletCache creates a new Redis-backed wallet cache.
func NewWalletCache(client *goredis.Client) *WalletCache {
	return &WalletCache{
		client: client,
		prefix: "wallet:",
	}
}

// Get retrieves a cached wallet by its identifier.
// Returns nil, nil if the key does not exist.
func (c *WalletCache) Get(ctx context.Context, walletID string) (*domain.Wallet, error) {
	val, err := c.client.Get(ctx, c.prefix+walletID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis wallet get: %w", err)
	}

	var w domain.Wallet
	if err := json.Unmarshal(val, &w); err != nil {
		return nil, fmt.Errorf("decoding cached wallet: %w", err)
	}
	return &w, nil
}

// Set stores a wallet snapshot with TTL.
func (c *WalletCache) Set(ctx context.Context, wallet *domain.Wallet, ttl time.Duration) error {
	val, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("encoding wallet: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+wallet.WalletID, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis wallet set: %w", err)
	}
	return nil
}
