package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// UseCase use case для получения доступности слотов ресторана
type UseCase struct {
	businessRepo    BusinessRepository
	reservationRepo ReservationRepository
	cache           OccupancyCache
	metrics         CacheMetrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. cache и metrics могут быть nil.
func NewUseCase(
	businessRepo BusinessRepository,
	reservationRepo ReservationRepository,
	cache OccupancyCache,
	metrics CacheMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		reservationRepo: reservationRepo,
		cache:           cache,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: restaurant=%s, date=%s, party=%d",
		req.RestaurantID.Hex(), req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресторан
	restaurant, err := uc.businessRepo.GetByID(ctx, req.RestaurantID, domain.BusinessTypeRestaurant)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailability: restaurant id=%s not found", req.RestaurantID.Hex())
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("GetAvailability: failed to get restaurant id=%s: %v", req.RestaurantID.Hex(), err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	settings := restaurant.RestaurantSettings()
	response := &Response{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		Slots:        []domain.SlotAvailability{},
	}

	// 3. Закрытие и дни работы
	if settings.IsClosedOn(req.Date) {
		uc.logger.Info("GetAvailability: restaurant id=%s closed on %s", req.RestaurantID.Hex(), req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Генерируем слоты
	slots := generateTimeSlots(settings.TimeWindows, settings.SlotFrequencyMinutes, req.Date, uc.timeProvider.Now())
	if len(slots) == 0 {
		return response, nil
	}

	// 5. Занятость слотов
	counts, err := uc.occupancy(ctx, req.RestaurantID.Hex(), req)
	if err != nil {
		return nil, err
	}

	// 6. Доступность
	response.Slots = calculateAvailability(slots, counts, settings, req.PartySize)

	uc.logger.Info("GetAvailability: restaurant id=%s, %d slots", req.RestaurantID.Hex(), len(response.Slots))
	return response, nil
}

// occupancy читает занятость из кэша; при промахе или ошибке кэша считает по MongoDB
func (uc *UseCase) occupancy(ctx context.Context, key string, req *Request) (map[types.TimeString]int, error) {
	date := truncateDay(req.Date)

	if uc.cache != nil {
		counts, ok, err := uc.cache.Get(ctx, key, date)
		switch {
		case err != nil:
			uc.logger.Warn("GetAvailability: cache read failed, falling back to store: %v", err)
			uc.incCache("error")
		case ok:
			uc.incCache("hit")
			return counts, nil
		default:
			uc.incCache("miss")
		}
	}

	counts, err := uc.reservationRepo.CountBySlot(ctx, req.RestaurantID, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to count reservations: %v", ErrInternal, err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, date, counts); err != nil {
			uc.logger.Warn("GetAvailability: cache write failed: %v", err)
		}
	}
	return counts, nil
}

func (uc *UseCase) incCache(result string) {
	if uc.metrics != nil {
		uc.metrics.IncCache(result)
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
