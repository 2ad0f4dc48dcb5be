// Package cache keeps recently fetched class sessions and members in Redis
// so list and detail views do not hit the studio API on every render.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/ClassBooker/internal/domain"
)

const (
	classKeyPrefix  = "class:"
	memberKeyPrefix = "member:"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

type Config struct {
	RedisClient *redis.Client
	TTL         time.Duration
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(ctx context.Context, cfg *Config) (*RedisCache, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}

	if err := cfg.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: cfg.RedisClient, ttl: cfg.TTL}, nil
}

func (r *RedisCache) GetClass(ctx context.Context, id string) (*domain.ClassSession, error) {
	var c domain.ClassSession
	if err := r.get(ctx, classKeyPrefix+id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RedisCache) SetClass(ctx context.Context, c *domain.ClassSession) error {
	if c == nil || c.ID == "" {
		return errors.New("class and class id cannot be empty")
	}
	return r.set(ctx, classKeyPrefix+c.ID, c)
}

func (r *RedisCache) InvalidateClass(ctx context.Context, ids ...string) error {
	return r.del(ctx, classKeyPrefix, ids)
}

func (r *RedisCache) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	var m domain.Member
	if err := r.get(ctx, memberKeyPrefix+id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *RedisCache) SetMember(ctx context.Context, m *domain.Member) error {
	if m == nil || m.ID == "" {
		return errors.New("member and member id cannot be empty")
	}
	return r.set(ctx, memberKeyPrefix+m.ID, m)
}

func (r *RedisCache) InvalidateMember(ctx context.Context, ids ...string) error {
	return r.del(ctx, memberKeyPrefix, ids)
}

func (r *RedisCache) get(ctx context.Context, key string, out any) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return fmt.Errorf("get %s: %w", key, err)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err = r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) del(ctx context.Context, prefix string, ids []string) error {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			keys = append(keys, prefix+id)
		}
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}
