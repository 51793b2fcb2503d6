// Package viewstate keeps the per-client selection state of the
// presentation layer: region, selected matchup and active view.
package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// ErrNotFound is returned for unknown view ids
var ErrNotFound = errors.New("view state not found")

// Store persists view states by id
type Store interface {
	Get(ctx context.Context, id string) (models.ViewState, error)
	Save(ctx context.Context, state models.ViewState) error
}

// MemoryStore keeps view states in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]models.ViewState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]models.ViewState)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (models.ViewState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok {
		return models.ViewState{}, ErrNotFound
	}
	return cloneState(state), nil
}

func (s *MemoryStore) Save(ctx context.Context, state models.ViewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.ID] = cloneState(state)
	return nil
}

// cloneState copies the selected matchup pointer so callers cannot mutate
// stored state.
func cloneState(state models.ViewState) models.ViewState {
	if state.SelectedMatchup != nil {
		idx := *state.SelectedMatchup
		state.SelectedMatchup = &idx
	}
	return state
}

// RedisClient defines the subset of the Redis client used by RedisStore
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	GetEx(ctx context.Context, key string, expiration time.Duration) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps view states as JSON values with a sliding TTL: both
// reads and writes reset the expiry.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
}

func NewRedisStore(client RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func viewKey(id string) string {
	return "view:" + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.ViewState, error) {
	// GETEX pushes the expiry out on every read, so active views stay alive
	var cmd *redis.StringCmd
	if s.ttl > 0 {
		cmd = s.client.GetEx(ctx, viewKey(id), s.ttl)
	} else {
		cmd = s.client.Get(ctx, viewKey(id))
	}
	raw, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ViewState{}, ErrNotFound
	}
	if err != nil {
		return models.ViewState{}, fmt.Errorf("redis get view %s: %w", id, err)
	}

	var state models.ViewState
	if err := json.Unmarshal(raw, &state); err != nil {
		return models.ViewState{}, fmt.Errorf("decode view %s: %w", id, err)
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, state models.ViewState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode view %s: %w", state.ID, err)
	}
	if err := s.client.Set(ctx, viewKey(state.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set view %s: %w", state.ID, err)
	}
	return nil
}
