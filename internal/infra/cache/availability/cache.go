package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

const keyPrefix = "availability"

// Cache кэш занятости слотов ресторана на дату: время -> число активных бронирований
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key возвращает ключ кэша: availability:<restaurantId>:<YYYY-MM-DD>
func Key(businessID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, businessID, date.Format(domain.DateFormat))
}

// Get возвращает закэшированную занятость; ok=false при промахе
func (c *Cache) Get(ctx context.Context, businessID string, date time.Time) (map[types.TimeString]int, bool, error) {
	raw, err := c.client.Get(ctx, Key(businessID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrCacheRead, err)
	}

	counts := make(map[types.TimeString]int)
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, false, fmt.Errorf("%w: decode: %v", ErrCacheRead, err)
	}
	return counts, true, nil
}

// Set сохраняет занятость с TTL.
// Set, посчитанный до параллельного Invalidate, может вернуть устаревшие данные в кэш;
// они живут не дольше TTL, поэтому TTL держим коротким (availability.cache_ttl).
func (c *Cache) Set(ctx context.Context, businessID string, date time.Time, counts map[types.TimeString]int) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCacheWrite, err)
	}
	if err := c.client.Set(ctx, Key(businessID, date), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCacheWrite, err)
	}
	return nil
}

// Invalidate удаляет занятость ресторана на дату
func (c *Cache) Invalidate(ctx context.Context, businessID string, date time.Time) error {
	if err := c.client.Del(ctx, Key(businessID, date)).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCacheWrite, err)
	}
	return nil
}
