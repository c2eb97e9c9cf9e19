package cache

import (
	"context"
	"testing"
	"time"

	"collection-route-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisScheduleCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisScheduleCache(client, time.Minute), srv
}

func testSchedule(id string) *domain.CollectionSchedule {
	return &domain.CollectionSchedule{
		ID: id,
		Route: []domain.RoutePoint{
			{
				Coordinates: domain.Coordinates{Lat: 41.38, Lng: 2.17},
				Address:     "Carrer de Mallorca 401",
				Status:      domain.PointPending,
			},
		},
		Capacity:      domain.Capacity{Current: 0, Maximum: 500, Unit: "kg"},
		ScheduledDate: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:      domain.TimeSlot{Start: "08:00", End: "12:00"},
		Status:        domain.ScheduleScheduled,
		IsActive:      true,
	}
}

func TestScheduleCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "sched-1")
	require.NoError(t, err)
	assert.False(t, ok, "empty cache should miss")

	want := testSchedule("sched-1")
	require.NoError(t, c.Set(ctx, want))

	got, ok, err := c.Get(ctx, "sched-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Capacity, got.Capacity)
	assert.Equal(t, want.TimeSlot, got.TimeSlot)
	require.Len(t, got.Route, 1)
	assert.Equal(t, want.Route[0].Address, got.Route[0].Address)
}

func TestScheduleCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testSchedule("sched-2")))
	require.NoError(t, c.Invalidate(ctx, "sched-2"))

	_, ok, err := c.Get(ctx, "sched-2")
	require.NoError(t, err)
	assert.False(t, ok, "invalidated entry should miss")
}

func TestScheduleCacheExpiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testSchedule("sched-3")))

	srv.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "sched-3")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after TTL")
}

func TestScheduleCacheValidation(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, _, err := c.Get(ctx, "")
	assert.Error(t, err)

	assert.Error(t, c.Set(ctx, nil))
	assert.Error(t, c.Set(ctx, &domain.CollectionSchedule{}))
	assert.Error(t, c.Invalidate(ctx, ""))
}
