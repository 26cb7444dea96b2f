package create_privatisation_v2

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
)

// UseCase use case для приватизации ресторана по фиксированному тарифу за гостя
type UseCase struct {
	reservationRepo ReservationRepository
	businessRepo    BusinessRepository
	calculator      TotalCalculator
	hooks           HookRunner
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	businessRepo BusinessRepository,
	calculator TotalCalculator,
	hooks HookRunner,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		businessRepo:    businessRepo,
		calculator:      calculator,
		hooks:           hooks,
		logger:          logger,
	}
}

// Execute выполняет use case. Тариф опции приватизации не учитывается:
// сумма всегда гости * фиксированная ставка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePrivatisationV2: restaurant=%s, party=%d, date=%s, type=%s",
		req.RestaurantID.Hex(), req.PartySize, req.Date.Format(domain.DateFormat), req.Type)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePrivatisationV2: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресторан
	restaurant, err := uc.businessRepo.GetByID(ctx, req.RestaurantID, domain.BusinessTypeRestaurant)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreatePrivatisationV2: restaurant id=%s not found", req.RestaurantID.Hex())
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreatePrivatisationV2: failed to get restaurant id=%s: %v", req.RestaurantID.Hex(), err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 3. Сохраняем бронирование
	created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		BusinessID:   restaurant.ID,
		BusinessType: domain.BusinessTypeRestaurant,
		Kind:         domain.KindPrivatisation,
		CustomerID:   req.CustomerID,
		Customer:     req.Customer,
		PartySize:    req.PartySize,
		Date:         req.Date,
		Time:         req.Time,
		Duration:     req.DurationHours,
		Privatisation: &domain.PrivatisationDetails{
			Type:          req.Type,
			Space:         req.Space,
			Menu:          req.Menu,
			DurationHours: req.DurationHours,
		},
		Status:          domain.StatusConfirmed,
		TotalAmount:     uc.calculator.PrivatisationTotal(req.PartySize),
		Notes:           privatisationNotes(req),
		SpecialRequests: privatisationSpecialRequests(req.PartySize),
	})
	if err != nil {
		uc.logger.Error("CreatePrivatisationV2: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePrivatisationV2: created reservation id=%s total=%.2f", created.ID.Hex(), created.TotalAmount)

	// 4. Пост-коммит хуки
	uc.hooks.Run(ctx, created)

	return &Response{Reservation: created}, nil
}
