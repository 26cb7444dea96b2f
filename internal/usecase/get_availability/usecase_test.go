package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

type fakeBusinesses struct {
	restaurant *domain.Business
}

func (f *fakeBusinesses) GetByID(_ context.Context, id primitive.ObjectID, _ domain.BusinessType) (*domain.Business, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return f.restaurant, nil
}

type fakeCounter struct {
	counts map[types.TimeString]int
	calls  int
}

func (f *fakeCounter) CountBySlot(context.Context, primitive.ObjectID, time.Time) (map[types.TimeString]int, error) {
	f.calls++
	return f.counts, nil
}

type fakeCache struct {
	stored  map[types.TimeString]int
	readErr error
	sets    int
}

func (f *fakeCache) Get(context.Context, string, time.Time) (map[types.TimeString]int, bool, error) {
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	if f.stored == nil {
		return nil, false, nil
	}
	return f.stored, true, nil
}

func (f *fakeCache) Set(_ context.Context, _ string, _ time.Time, counts map[types.TimeString]int) error {
	f.sets++
	f.stored = counts
	return nil
}

type fakeCacheMetrics struct {
	results []string
}

func (f *fakeCacheMetrics) IncCache(result string) { f.results = append(f.results, result) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var (
	today  = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	future = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

func lunchRestaurant() *domain.Business {
	settings := domain.DefaultRestaurantSettings()
	settings.TimeWindows = []domain.TimeWindow{{Open: "12:00", Close: "14:00", PricePerGuest: 40}}
	settings.SlotFrequencyMinutes = 30
	settings.MaxReservationsPerSlot = 3
	settings.MaxPartySize = 6
	return &domain.Business{ID: primitive.NewObjectID(), Type: domain.BusinessTypeRestaurant, Settings: &settings}
}

func newUseCase(r *domain.Business, counter *fakeCounter, cache OccupancyCache, m CacheMetrics) *UseCase {
	uc := NewUseCase(&fakeBusinesses{restaurant: r}, counter, cache, m, logger.Nop{})
	uc.timeProvider = fixedTime{now: today}
	return uc
}

func slotTimes(slots []domain.SlotAvailability) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time.String()
	}
	return out
}

func TestExecute_EnumeratesAndMarksFullSlots(t *testing.T) {
	r := lunchRestaurant()
	counter := &fakeCounter{counts: map[types.TimeString]int{"12:30": 3, "13:00": 1}}
	uc := newUseCase(r, counter, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: future, PartySize: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"12:00", "12:30", "13:00", "13:30"}, slotTimes(resp.Slots))
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, 0, resp.Slots[1].Remaining())
	assert.True(t, resp.Slots[2].Available)
	assert.Equal(t, 2, resp.Slots[2].Remaining())
}

func TestExecute_PartyTooLarge(t *testing.T) {
	r := lunchRestaurant()
	uc := newUseCase(r, &fakeCounter{}, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: future, PartySize: 7})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	for _, s := range resp.Slots {
		assert.False(t, s.Available)
	}
}

func TestExecute_ClosedDates(t *testing.T) {
	t.Run("closure period", func(t *testing.T) {
		r := lunchRestaurant()
		r.Settings.Closures = []domain.ClosurePeriod{{
			Start: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		}}
		counter := &fakeCounter{}
		uc := newUseCase(r, counter, nil, nil)

		resp, err := uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: future, PartySize: 2})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.Zero(t, counter.calls)
	})

	t.Run("weekday not open", func(t *testing.T) {
		r := lunchRestaurant()
		r.Settings.OpenDays = []string{"Saturday", "Sunday"} // 2025-06-10 - вторник
		uc := newUseCase(r, &fakeCounter{}, nil, nil)

		resp, err := uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: future, PartySize: 2})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_TodaySkipsPastSlotsAndPastDatesAreEmpty(t *testing.T) {
	r := lunchRestaurant()
	uc := newUseCase(r, &fakeCounter{}, nil, nil)
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 10, 12, 45, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: future, PartySize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"13:00", "13:30"}, slotTimes(resp.Slots))

	resp, err = uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: today, PartySize: 2})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_CacheMissThenHit(t *testing.T) {
	r := lunchRestaurant()
	counter := &fakeCounter{counts: map[types.TimeString]int{"12:00": 1}}
	cache := &fakeCache{}
	m := &fakeCacheMetrics{}
	uc := newUseCase(r, counter, cache, m)

	for i := 0; i < 2; i++ {
		resp, err := uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: future, PartySize: 2})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Slots[0].Reserved)
	}

	assert.Equal(t, 1, counter.calls)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, []string{"miss", "hit"}, m.results)
}

func TestExecute_CacheErrorFallsBackToStore(t *testing.T) {
	r := lunchRestaurant()
	counter := &fakeCounter{counts: map[types.TimeString]int{}}
	uc := newUseCase(r, counter, &fakeCache{readErr: errors.New("redis: connection refused")}, nil)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: r.ID, Date: future, PartySize: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, counter.calls)
}

func TestExecute_NotFoundAndValidation(t *testing.T) {
	uc := newUseCase(nil, &fakeCounter{}, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{RestaurantID: primitive.NewObjectID(), Date: future, PartySize: 2})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	_, err = uc.Execute(context.Background(), &Request{RestaurantID: primitive.NewObjectID(), Date: future})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
