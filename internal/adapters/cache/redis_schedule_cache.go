package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"collection-route-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for schedule reads. A thin get/set JSON wrapper with a
// TTL: no eviction policy of its own, and a miss simply falls through to
// the repository.
type RedisScheduleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{Client: client, TTL: ttl}
}

func scheduleKey(id string) string { return "schedule:" + id }

// Get returns the cached schedule and whether it was present.
func (c *RedisScheduleCache) Get(ctx context.Context, id string) (*domain.CollectionSchedule, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("schedule cache: client is nil")
	}

	if id == "" {
		return nil, false, errors.New("get schedule cache: id must not be empty")
	}

	payload, err := c.Client.Get(ctx, scheduleKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get schedule cache id=%q: %w", id, err)
	}

	var s domain.CollectionSchedule
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, false, fmt.Errorf("get schedule cache id=%q: unmarshal: %w", id, err)
	}

	return &s, true, nil
}

// Set stores a schedule under its identifier with the configured TTL.
func (c *RedisScheduleCache) Set(ctx context.Context, schedule *domain.CollectionSchedule) error {
	if c.Client == nil {
		return errors.New("schedule cache: client is nil")
	}

	if schedule == nil || schedule.ID == "" {
		return errors.New("set schedule cache: schedule with non-empty id is required")
	}

	payload, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("set schedule cache id=%q: marshal: %w", schedule.ID, err)
	}

	if err := c.Client.Set(ctx, scheduleKey(schedule.ID), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("set schedule cache id=%q: %w", schedule.ID, err)
	}

	return nil
}

// Invalidate drops a cached schedule after a write.
func (c *RedisScheduleCache) Invalidate(ctx context.Context, id string) error {
	if c.Client == nil {
		return errors.New("schedule cache: client is nil")
	}

	if id == "" {
		return errors.New("invalidate schedule cache: id must not be empty")
	}

	if err := c.Client.Del(ctx, scheduleKey(id)).Err(); err != nil {
		return fmt.Errorf("invalidate schedule cache id=%q: %w", id, err)
	}

	return nil
}
