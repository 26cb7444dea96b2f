package create_reservation_v2

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
)

// UseCase use case для бронирования стола с ценой по временному окну
type UseCase struct {
	reservationRepo ReservationRepository
	businessRepo    BusinessRepository
	resolver        PriceResolver
	calculator      TotalCalculator
	hooks           HookRunner
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	businessRepo BusinessRepository,
	resolver PriceResolver,
	calculator TotalCalculator,
	hooks HookRunner,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		businessRepo:    businessRepo,
		resolver:        resolver,
		calculator:      calculator,
		hooks:           hooks,
		logger:          logger,
	}
}

// Execute выполняет use case: гости * цена окна, статус confirmed, затем хуки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservationV2: restaurant=%s, party=%d, date=%s, time=%s",
		req.RestaurantID.Hex(), req.PartySize, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservationV2: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресторан
	restaurant, err := uc.businessRepo.GetByID(ctx, req.RestaurantID, domain.BusinessTypeRestaurant)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateReservationV2: restaurant id=%s not found", req.RestaurantID.Hex())
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateReservationV2: failed to get restaurant id=%s: %v", req.RestaurantID.Hex(), err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Цена за гостя и сумма
	price := uc.resolver.PricePerGuest(restaurant.RestaurantSettings().TimeWindows, req.Time)
	total := uc.calculator.StandardTotal(req.PartySize, price)

	// 4. Сохраняем бронирование
	created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		BusinessID:   restaurant.ID,
		BusinessType: domain.BusinessTypeRestaurant,
		Kind:         domain.KindStandard,
		CustomerID:   req.CustomerID,
		Customer:     req.Customer,
		PartySize:    req.PartySize,
		Date:         req.Date,
		Time:         req.Time,
		Seating:      req.Seating,
		Status:       domain.StatusConfirmed,
		TotalAmount:  total,
		Notes:        req.Notes,
	})
	if err != nil {
		uc.logger.Error("CreateReservationV2: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservationV2: created reservation id=%s, %d x %.2f = %.2f",
		created.ID.Hex(), req.PartySize, price, total)

	// 5. Пост-коммит хуки
	uc.hooks.Run(ctx, created)

	return &Response{Reservation: created}, nil
}
