package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// fakeRedis хранит значения в памяти; неиспользуемые команды Cmdable не реализованы
type fakeRedis struct {
	redis.Cmdable

	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

var day = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestKey(t *testing.T) {
	date := time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC)
	assert.Equal(t, "availability:665a1f:2024-06-01", Key("665a1f", date))
}

func TestGet_Miss(t *testing.T) {
	c := NewCache(newFakeRedis(), time.Minute)

	counts, ok, err := c.Get(context.Background(), "665a1f", day)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, counts)
}

func TestSetGetInvalidate(t *testing.T) {
	rdb := newFakeRedis()
	c := NewCache(rdb, 45*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "665a1f", day, map[types.TimeString]int{"12:00": 3, "12:30": 1}))
	assert.Equal(t, 45*time.Second, rdb.ttls[Key("665a1f", day)])

	counts, ok, err := c.Get(ctx, "665a1f", day)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[types.TimeString]int{"12:00": 3, "12:30": 1}, counts)

	require.NoError(t, c.Invalidate(ctx, "665a1f", day))
	_, ok, err = c.Get(ctx, "665a1f", day)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGet_DecodeError(t *testing.T) {
	rdb := newFakeRedis()
	rdb.values[Key("665a1f", day)] = "not-json"
	c := NewCache(rdb, time.Minute)

	_, ok, err := c.Get(context.Background(), "665a1f", day)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCacheRead)
}

func TestRedisErrors(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	c := NewCache(rdb, time.Minute)
	ctx := context.Background()

	_, _, err := c.Get(ctx, "665a1f", day)
	assert.ErrorIs(t, err, ErrCacheRead)
	assert.ErrorIs(t, c.Set(ctx, "665a1f", day, map[types.TimeString]int{}), ErrCacheWrite)
	assert.ErrorIs(t, c.Invalidate(ctx, "665a1f", day), ErrCacheWrite)
}
