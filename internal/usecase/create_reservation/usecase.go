package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	catalogRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования отеля, ресторана или салона
type UseCase struct {
	reservationRepo ReservationRepository
	businessRepo    BusinessRepository
	serviceRepo     ServiceRepository
	roomRepo        RoomRepository
	resolver        PriceResolver
	calculator      TotalCalculator
	hooks           HookRunner
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	roomRepo RoomRepository,
	resolver PriceResolver,
	calculator TotalCalculator,
	hooks HookRunner,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		businessRepo:    businessRepo,
		serviceRepo:     serviceRepo,
		roomRepo:        roomRepo,
		resolver:        resolver,
		calculator:      calculator,
		hooks:           hooks,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Сумма всегда считается на сервере; хуки (счет, кэш, событие) выполняются после записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: business=%s type=%s, party=%d, date=%s, time=%s",
		req.BusinessID.Hex(), req.BusinessType, req.PartySize, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	businessType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бизнес. Отсутствие бизнеса не блокирует бронирование:
	// проверка дат отеля и цены ресторана просто не применяются.
	business, err := uc.businessRepo.GetByID(ctx, req.BusinessID, businessType)
	if err != nil {
		if !errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Error("CreateReservation: failed to get business id=%s: %v", req.BusinessID.Hex(), err)
			return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateReservation: business id=%s (%s) not found, guards skipped", req.BusinessID.Hex(), businessType)
		business = nil
	}

	reservation := &domain.Reservation{
		BusinessID:      req.BusinessID,
		BusinessType:    businessType,
		Kind:            domain.KindStandard,
		CustomerID:      req.CustomerID,
		Customer:        req.Customer,
		PartySize:       req.PartySize,
		Date:            req.Date,
		Time:            req.Time,
		Duration:        req.Duration,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Seating:         req.Seating,
		RoomID:          req.RoomID,
		TableID:         req.TableID,
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		Status:          domain.StatusPending,
		Notes:           req.Notes,
		SpecialRequests: req.SpecialRequests,
	}
	if reservation.Date.IsZero() && req.CheckIn != nil {
		reservation.Date = *req.CheckIn
	}

	// 3. Проверка дат отеля
	if businessType == domain.BusinessTypeHotel && business != nil {
		checkIn, checkOut := reservation.Stay()
		if err := checkOpeningPeriods(business.OpeningPeriods, checkIn, checkOut); err != nil {
			uc.logger.Warn("CreateReservation: hotel id=%s closed for %s..%s",
				req.BusinessID.Hex(), checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return nil, err
		}
	}

	// 4. Расчет суммы
	total, err := uc.computeTotal(ctx, business, reservation)
	if err != nil {
		return nil, err
	}
	reservation.TotalAmount = total

	// 5. Сохраняем бронирование
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s total=%.2f",
		created.ID.Hex(), created.TotalAmount)

	// 6. Пост-коммит хуки; их ошибки не влияют на результат
	uc.hooks.Run(ctx, created)

	return &Response{Reservation: created}, nil
}

// computeTotal считает сумму по типу бизнеса:
// ресторан - гости * цена окна, салон - цена услуги, отель - ночи * цена номера
func (uc *UseCase) computeTotal(ctx context.Context, business *domain.Business, r *domain.Reservation) (float64, error) {
	switch r.BusinessType {
	case domain.BusinessTypeRestaurant:
		var windows []domain.TimeWindow
		if business != nil {
			windows = business.RestaurantSettings().TimeWindows
		}
		price := uc.resolver.PricePerGuest(windows, r.Time)
		return uc.calculator.StandardTotal(r.PartySize, price), nil

	case domain.BusinessTypeSalon:
		if r.ServiceID == nil {
			return 0, nil
		}
		service, err := uc.serviceRepo.GetByID(ctx, *r.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrNotFound) {
				uc.logger.Warn("CreateReservation: service id=%s not found", r.ServiceID.Hex())
				return 0, ErrServiceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get service id=%s: %v", r.ServiceID.Hex(), err)
			return 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.BusinessID != r.BusinessID {
			return 0, domain.NewValidationError("serviceId", "service does not belong to the business")
		}
		return service.Price, nil

	case domain.BusinessTypeHotel:
		if r.RoomID == nil {
			return 0, nil
		}
		room, err := uc.roomRepo.GetByID(ctx, *r.RoomID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrNotFound) {
				uc.logger.Warn("CreateReservation: room id=%s not found", r.RoomID.Hex())
				return 0, ErrRoomNotFound
			}
			uc.logger.Error("CreateReservation: failed to get room id=%s: %v", r.RoomID.Hex(), err)
			return 0, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		if room.BusinessID != r.BusinessID {
			return 0, domain.NewValidationError("roomId", "room does not belong to the hotel")
		}
		checkIn, checkOut := r.Stay()
		return uc.calculator.StayTotal(nights(checkIn, checkOut), room.PricePerNight), nil
	}
	return 0, nil
}
