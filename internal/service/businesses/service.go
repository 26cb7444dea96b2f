package businesses

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
)

// Service сервис управления отелями, ресторанами и салонами
type Service struct {
	repo   BusinessRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(repo BusinessRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create создает бизнес. Для ресторана настройки накладываются на значения
// по умолчанию и проверяются до записи.
func (s *Service) Create(ctx context.Context, b *domain.Business, settings *domain.SettingsPatch) (*domain.Business, error) {
	principal, ok := domain.PrincipalFromContext(ctx)
	if !ok {
		s.logger.Warn("Create: anonymous request for %s", b.Type)
		return nil, domain.ErrUnauthenticated
	}

	if _, err := domain.ParseBusinessType(string(b.Type)); err != nil {
		return nil, err
	}
	if b.Name == "" || len(b.Name) > domain.MaxNameLength {
		return nil, domain.NewValidationError("name", "name must be between 1 and 200 characters")
	}
	common := domain.BusinessPatch{OpeningPeriods: &b.OpeningPeriods, StarRating: &b.StarRating}
	if err := common.Validate(); err != nil {
		return nil, err
	}

	if b.Type == domain.BusinessTypeRestaurant {
		var input domain.SettingsPatch
		if settings != nil {
			input = *settings
		}
		merged := input.Merge(domain.DefaultRestaurantSettings())
		if err := domain.ValidateRestaurantSettings(merged, input.TotalCapacity != nil); err != nil {
			s.logger.Warn("Create: invalid restaurant settings: %v", err)
			return nil, err
		}
		b.Settings = &merged
	} else {
		b.Settings = nil
	}

	if b.OwnerID == "" {
		b.OwnerID = principal.UserID
	}
	b.IsActive = true

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		s.logger.Error("Create: repository error for %s: %v", b.Type, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: %s id=%s created by user=%s", created.Type, created.ID.Hex(), principal.UserID)
	return created, nil
}

// Get получает бизнес заданного типа по ID
func (s *Service) Get(ctx context.Context, businessType domain.BusinessType, id primitive.ObjectID) (*domain.Business, error) {
	b, err := s.repo.GetByID(ctx, id, businessType)
	if err != nil {
		return nil, s.mapRepoError("Get", err)
	}
	return b, nil
}

// List возвращает активные бизнесы заданного типа
func (s *Service) List(ctx context.Context, businessType domain.BusinessType) ([]*domain.Business, error) {
	list, err := s.repo.List(ctx, businessType, true)
	if err != nil {
		s.logger.Error("List: repository error for %s: %v", businessType, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Update применяет частичное изменение общих полей бизнеса.
// Настройки ресторана меняются только через отдельный сценарий обновления ресторана.
func (s *Service) Update(ctx context.Context, businessType domain.BusinessType, id primitive.ObjectID, patch domain.BusinessPatch) (*domain.Business, error) {
	// 1. Проверка прав
	if err := domain.AuthorizeBusiness(ctx, id); err != nil {
		s.logger.Warn("Update: access denied to %s id=%s: %v", businessType, id.Hex(), err)
		return nil, err
	}

	// 2. Валидация входных данных
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	// 3. Загрузка текущего состояния
	b, err := s.repo.GetByID(ctx, id, businessType)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}

	// 4. Применение изменений и сохранение
	patch.Apply(b)
	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}

	s.logger.Info("Update: %s id=%s updated", businessType, id.Hex())
	return updated, nil
}

// Delete выполняет мягкое удаление бизнеса
func (s *Service) Delete(ctx context.Context, businessType domain.BusinessType, id primitive.ObjectID) error {
	if err := domain.AuthorizeBusiness(ctx, id); err != nil {
		s.logger.Warn("Delete: access denied to %s id=%s: %v", businessType, id.Hex(), err)
		return err
	}

	if err := s.repo.Deactivate(ctx, id, businessType); err != nil {
		return s.mapRepoError("Delete", err)
	}

	s.logger.Info("Delete: %s id=%s deactivated", businessType, id.Hex())
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	if errors.Is(err, businessRepo.ErrBusinessNotFound) {
		s.logger.Warn("%s: business not found", op)
		return ErrBusinessNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
