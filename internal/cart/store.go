package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/redis"
)

// Store persists one cart snapshot per user.
type Store interface {
	Load(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, userID string, cart *Cart) error
	Delete(ctx context.Context, userID string) error
}

type snapshotKV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(userID string) string
}

type redisStore struct {
	kv   snapshotKV
	ttl  time.Duration
	logg *logger.Logger
}

// NewRedisStore builds the Redis-backed snapshot store.
func NewRedisStore(kv snapshotKV, ttl time.Duration, logg *logger.Logger) (Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisStore{kv: kv, ttl: ttl, logg: logg}, nil
}

// Load reads the user's snapshot. A missing key is an empty cart; a corrupt
// snapshot is discarded with a warning and also yields an empty cart.
func (s *redisStore) Load(ctx context.Context, userID string) (*Cart, error) {
	key := s.kv.CartKey(userID)
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewCart(), nil
		}
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		if s.logg != nil {
			logCtx := s.logg.WithFields(ctx, map[string]any{"user_id": userID})
			s.logg.Warn(logCtx, "discarding corrupt cart snapshot")
		}
		if delErr := s.kv.Del(ctx, key); delErr != nil {
			return nil, fmt.Errorf("discard corrupt cart snapshot: %w", delErr)
		}
		return NewCart(), nil
	}
	return &cart, nil
}

// Save writes the snapshot, removing the key entirely when the cart emptied.
func (s *redisStore) Save(ctx context.Context, userID string, cart *Cart) error {
	key := s.kv.CartKey(userID)
	if cart == nil || cart.Empty() {
		if err := s.kv.Del(ctx, key); err != nil {
			return fmt.Errorf("remove empty cart snapshot: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, key, raw, s.ttl); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

// Delete removes the user's snapshot.
func (s *redisStore) Delete(ctx context.Context, userID string) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(userID)); err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}
