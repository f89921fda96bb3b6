package workbench

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository stores per-session workbench state. Implementations must treat
// a missing session as (nil, nil), not an error -- a fresh session simply
// has no state yet.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Clear(ctx context.Context, sessionID string) error
}

// redisRepository keeps each session's state as a JSON blob under a
// TTL-bound key. When the TTL lapses the workbench starts blank; nothing
// outlives the session window.
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed state repository. ttl bounds
// how long idle session state survives.
func NewRedisRepository(client *redis.Client, ttl time.Duration) Repository {
	return &redisRepository{client: client, ttl: ttl}
}

// stateKey namespaces session state in Redis.
func stateKey(sessionID string) string {
	return "workbench:state:" + sessionID
}

// Load fetches and decodes the session state, or (nil, nil) if absent.
func (r *redisRepository) Load(ctx context.Context, sessionID string) (*State, error) {
	raw, err := r.client.Get(ctx, stateKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading workbench state: %w", err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// Corrupt state is unrecoverable; treat it as absent so the
		// session restarts from defaults instead of erroring forever.
		return nil, nil
	}
	return &state, nil
}

// Save encodes and stores the session state, refreshing the TTL.
func (r *redisRepository) Save(ctx context.Context, sessionID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding workbench state: %w", err)
	}
	if err := r.client.Set(ctx, stateKey(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("saving workbench state: %w", err)
	}
	return nil
}

// Clear removes the session state.
func (r *redisRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, stateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clearing workbench state: %w", err)
	}
	return nil
}
