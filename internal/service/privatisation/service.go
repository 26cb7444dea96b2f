package privatisation

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	optionRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/privatisation"
)

// Service сервис управления опциями приватизации ресторана
type Service struct {
	repo         OptionRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса приватизации
func NewService(repo OptionRepository, businessRepo BusinessRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// ListByRestaurant возвращает опции ресторана
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]*domain.PrivatisationOption, error) {
	opts, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error("ListByRestaurant: repository error for restaurant=%s: %v", restaurantID.Hex(), err)
		return nil, fmt.Errorf("%w: ListByRestaurant - repository error: %v", ErrInternal, err)
	}
	return opts, nil
}

// Get получает опцию по ID
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*domain.PrivatisationOption, error) {
	opt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", err)
	}
	return opt, nil
}

// Create создает опцию для ресторана
func (s *Service) Create(ctx context.Context, opt *domain.PrivatisationOption) (*domain.PrivatisationOption, error) {
	// 1. Проверка прав
	if err := domain.AuthorizeBusiness(ctx, opt.RestaurantID); err != nil {
		s.logger.Warn("Create: access denied to restaurant=%s: %v", opt.RestaurantID.Hex(), err)
		return nil, err
	}

	// 2. Валидация входных данных
	if err := validateOption(opt); err != nil {
		return nil, err
	}

	// 3. Проверка существования ресторана
	if _, err := s.businessRepo.GetByID(ctx, opt.RestaurantID, domain.BusinessTypeRestaurant); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("Create: restaurant=%s not found", opt.RestaurantID.Hex())
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Create: failed to load restaurant=%s: %v", opt.RestaurantID.Hex(), err)
		return nil, fmt.Errorf("%w: Create - business repository: %v", ErrInternal, err)
	}

	// 4. Сохранение
	created, err := s.repo.Create(ctx, opt)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: privatisation option id=%s for restaurant=%s", created.ID.Hex(), created.RestaurantID.Hex())
	return created, nil
}

// Update перезаписывает опцию; ресторан опции не меняется
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, input *domain.PrivatisationOption) (*domain.PrivatisationOption, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}
	if err := domain.AuthorizeBusiness(ctx, current.RestaurantID); err != nil {
		s.logger.Warn("Update: access denied to option=%s: %v", id.Hex(), err)
		return nil, err
	}

	input.ID = current.ID
	input.RestaurantID = current.RestaurantID
	input.CreatedAt = current.CreatedAt
	if err := validateOption(input); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, input)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}

	s.logger.Info("Update: privatisation option id=%s updated", id.Hex())
	return updated, nil
}

// Delete удаляет опцию
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.mapRepoError("Delete", err)
	}
	if err := domain.AuthorizeBusiness(ctx, current.RestaurantID); err != nil {
		s.logger.Warn("Delete: access denied to option=%s: %v", id.Hex(), err)
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", err)
	}

	s.logger.Info("Delete: privatisation option id=%s deleted", id.Hex())
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	if errors.Is(err, optionRepo.ErrOptionNotFound) {
		s.logger.Warn("%s: privatisation option not found", op)
		return ErrOptionNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
