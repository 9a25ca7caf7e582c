package connect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const attemptKeyPrefix = "connectAttempt:"

var (
	// ErrAttemptNotFound means the attempt never existed or its TTL expired.
	ErrAttemptNotFound = errors.New("connection attempt not found")
	// ErrStaleAttempt means the attempt moved on while an async result
	// was in flight; the result is discarded.
	ErrStaleAttempt = errors.New("connection attempt changed; result discarded")
)

// AttemptStore holds in-flight connection attempts. Attempts expire with
// a TTL; Apply is a compare-and-set against the attempt's version.
type AttemptStore interface {
	Save(ctx context.Context, attempt *Attempt) error
	Get(ctx context.Context, id string) (*Attempt, error)
	Apply(ctx context.Context, id string, expectedVersion int, fn func(*Attempt)) (*Attempt, error)
}

// RedisAttemptStore is the production AttemptStore, following the same
// keyed-JSON-with-TTL shape as the session store.
type RedisAttemptStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisAttemptStore builds a store over the given client with the given TTL.
func NewRedisAttemptStore(client *redis.Client, ttl time.Duration) *RedisAttemptStore {
	return &RedisAttemptStore{Client: client, TTL: ttl}
}

func (s *RedisAttemptStore) Save(ctx context.Context, attempt *Attempt) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt: %w", err)
	}
	if err := s.Client.Set(ctx, attemptKeyPrefix+attempt.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}

func (s *RedisAttemptStore) Get(ctx context.Context, id string) (*Attempt, error) {
	data, err := s.Client.Get(ctx, attemptKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt: %w", err)
	}
	var attempt Attempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attempt: %w", err)
	}
	return &attempt, nil
}

// Apply mutates the stored attempt through fn iff its version still
// equals expectedVersion. The watch/transaction keeps a concurrent
// transition from being silently overwritten.
func (s *RedisAttemptStore) Apply(ctx context.Context, id string, expectedVersion int, fn func(*Attempt)) (*Attempt, error) {
	key := attemptKeyPrefix + id
	var updated *Attempt

	err := s.Client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrAttemptNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load attempt: %w", err)
		}
		var attempt Attempt
		if err := json.Unmarshal([]byte(data), &attempt); err != nil {
			return fmt.Errorf("failed to unmarshal attempt: %w", err)
		}
		if attempt.Version != expectedVersion {
			return ErrStaleAttempt
		}

		fn(&attempt)

		payload, err := json.Marshal(&attempt)
		if err != nil {
			return fmt.Errorf("failed to marshal attempt: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.TTL)
			return nil
		})
		if err != nil {
			return err
		}
		updated = &attempt
		return nil
	}, key)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
