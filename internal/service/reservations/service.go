package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/reservation"
)

// Service сервис чтения и изменения существующих бронирований
type Service struct {
	repo   ReservationRepository
	cache  AvailabilityInvalidator
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// cache может быть nil, если Redis отключен.
func NewService(repo ReservationRepository, cache AvailabilityInvalidator, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает бронирования бизнеса; доступно только владельцу
func (s *Service) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if err := domain.AuthorizeBusiness(ctx, filter.BusinessID); err != nil {
		s.logger.Warn("List: access denied to business=%s: %v", filter.BusinessID.Hex(), err)
		return nil, err
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for business=%s: %v", filter.BusinessID.Hex(), err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Get получает бронирование по ID
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", err)
	}
	return r, nil
}

// Update применяет частичное изменение. Сумма не меняется никогда.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, patch domain.ReservationPatch) (*domain.Reservation, error) {
	// 1. Валидация входных данных
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	// 2. Загрузка и проверка прав
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}
	if err := domain.AuthorizeBusiness(ctx, current.BusinessID); err != nil {
		s.logger.Warn("Update: access denied to reservation=%s: %v", id.Hex(), err)
		return nil, err
	}

	if patch.IsEmpty() {
		return current, nil
	}

	// 3. Сохранение
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}

	// 4. Сброс кэша занятости на старую и новую дату
	s.invalidate(ctx, current, current.Date)
	if !updated.Date.Equal(current.Date) {
		s.invalidate(ctx, updated, updated.Date)
	}

	s.logger.Info("Update: reservation=%s updated", id.Hex())
	return updated, nil
}

// Cancel отменяет бронирование в статусе pending или confirmed
func (s *Service) Cancel(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	cancelled, err := s.repo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: reservation=%s cannot be cancelled", id.Hex())
			return nil, ErrCannotCancel
		}
		return nil, s.mapRepoError("Cancel", err)
	}

	s.invalidate(ctx, cancelled, cancelled.Date)
	s.logger.Info("Cancel: reservation=%s cancelled", id.Hex())
	return cancelled, nil
}

// Delete удаляет бронирование; доступно только владельцу бизнеса
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.mapRepoError("Delete", err)
	}
	if err := domain.AuthorizeBusiness(ctx, current.BusinessID); err != nil {
		s.logger.Warn("Delete: access denied to reservation=%s: %v", id.Hex(), err)
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", err)
	}

	s.invalidate(ctx, current, current.Date)
	s.logger.Info("Delete: reservation=%s deleted", id.Hex())
	return nil
}

func (s *Service) invalidate(ctx context.Context, r *domain.Reservation, date time.Time) {
	if s.cache == nil || r.BusinessType != domain.BusinessTypeRestaurant {
		return
	}
	if err := s.cache.Invalidate(ctx, r.BusinessID.Hex(), date); err != nil {
		s.logger.Warn("invalidate: availability cache for business=%s: %v", r.BusinessID.Hex(), err)
	}
}

func (s *Service) mapRepoError(op string, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation not found", op)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validatePatch(p domain.ReservationPatch) error {
	if p.PartySize != nil && *p.PartySize < domain.MinPartySize {
		return domain.NewValidationError("partySize", "party size must be at least 1")
	}
	if p.Time != nil {
		if err := p.Time.Validate(); err != nil {
			return domain.NewValidationError("time", "time must be in HH:MM format")
		}
	}
	if p.Notes != nil && len(*p.Notes) > domain.MaxNotesLength {
		return domain.NewValidationError("notes", "notes must not exceed 1000 characters")
	}
	if p.SpecialRequests != nil && len(*p.SpecialRequests) > domain.MaxNotesLength {
		return domain.NewValidationError("specialRequests", "special requests must not exceed 1000 characters")
	}
	return nil
}
