package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hireloop/intervu-backend/internal/model"
)

const (
	sessionKeyPrefix = "intervu:session:"
	candidateListKey = "intervu:candidates"
	candidateKeyBase = "intervu:candidate:"
)

// RedisStore persists sessions and candidates in Redis. Each session lives
// under its own key as a JSON string; candidates keep both a per-id key and
// an ordered list of ids so listing preserves append order.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a RedisStore on top of an existing client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	s := &model.Session{}
	if err := json.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (r *RedisStore) PutSession(ctx context.Context, s *model.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKeyPrefix+s.ID, raw, 0).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (r *RedisStore) DeleteSession(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RedisStore) AppendCandidate(ctx context.Context, c *model.Candidate) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode candidate: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, candidateKeyBase+c.ID, raw, 0)
	pipe.RPush(ctx, candidateListKey, c.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append candidate: %w", err)
	}
	return nil
}

func (r *RedisStore) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	ids, err := r.rdb.LRange(ctx, candidateListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list candidate ids: %w", err)
	}
	out := make([]model.Candidate, 0, len(ids))
	for _, id := range ids {
		c, err := r.GetCandidate(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *RedisStore) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	raw, err := r.rdb.Get(ctx, candidateKeyBase+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	c := &model.Candidate{}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}
	return c, nil
}
