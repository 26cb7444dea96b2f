package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/catalog"
)

// Service сервис CRUD одного вида элементов каталога (услуги, персонал, столы, номера)
type Service[T Item] struct {
	kind         string
	businessType *domain.BusinessType // фиксированный тип бизнеса: столы - ресторан, номера - отель
	repo         Repository[T]
	logger       Logger
}

// NewServicesService услуги
func NewServicesService(repo Repository[domain.Service], logger Logger) *Service[domain.Service] {
	return &Service[domain.Service]{kind: "service", repo: repo, logger: logger}
}

// NewStaffService персонал
func NewStaffService(repo Repository[domain.Staff], logger Logger) *Service[domain.Staff] {
	return &Service[domain.Staff]{kind: "staff", repo: repo, logger: logger}
}

// NewTablesService столы ресторана
func NewTablesService(repo Repository[domain.Table], logger Logger) *Service[domain.Table] {
	bt := domain.BusinessTypeRestaurant
	return &Service[domain.Table]{kind: "table", businessType: &bt, repo: repo, logger: logger}
}

// NewRoomsService номера отеля
func NewRoomsService(repo Repository[domain.Room], logger Logger) *Service[domain.Room] {
	bt := domain.BusinessTypeHotel
	return &Service[domain.Room]{kind: "room", businessType: &bt, repo: repo, logger: logger}
}

// List возвращает элементы бизнеса; businessType фильтрует, если задан
func (s *Service[T]) List(ctx context.Context, businessID primitive.ObjectID, businessType *domain.BusinessType) ([]*T, error) {
	if s.businessType != nil {
		businessType = s.businessType
	}
	items, err := s.repo.ListByBusiness(ctx, businessID, businessType)
	if err != nil {
		s.logger.Error("List: %s repository error for business=%s: %v", s.kind, businessID.Hex(), err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// Get получает элемент по ID
func (s *Service[T]) Get(ctx context.Context, id primitive.ObjectID) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", err)
	}
	return item, nil
}

// Create создает элемент; доступно только владельцу бизнеса
func (s *Service[T]) Create(ctx context.Context, item *T) (*T, error) {
	owner := (*item).Owner()
	if err := domain.AuthorizeBusiness(ctx, owner); err != nil {
		s.logger.Warn("Create: %s access denied to business=%s: %v", s.kind, owner.Hex(), err)
		return nil, err
	}
	if err := (*item).Validate(); err != nil {
		return nil, err
	}
	if s.businessType != nil {
		setBusinessType(item, *s.businessType)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: %s repository error: %v", s.kind, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: %s created for business=%s", s.kind, owner.Hex())
	return created, nil
}

// Update перезаписывает элемент. Принадлежность бизнесу и дата создания сохраняются.
func (s *Service[T]) Update(ctx context.Context, id primitive.ObjectID, input *T) (*T, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}
	if err := domain.AuthorizeBusiness(ctx, (*current).Owner()); err != nil {
		s.logger.Warn("Update: %s=%s access denied: %v", s.kind, id.Hex(), err)
		return nil, err
	}

	inherit(input, current)
	if err := (*input).Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Replace(ctx, input)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}

	s.logger.Info("Update: %s=%s updated", s.kind, id.Hex())
	return updated, nil
}

// Delete удаляет элемент
func (s *Service[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.mapRepoError("Delete", err)
	}
	if err := domain.AuthorizeBusiness(ctx, (*current).Owner()); err != nil {
		s.logger.Warn("Delete: %s=%s access denied: %v", s.kind, id.Hex(), err)
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", err)
	}

	s.logger.Info("Delete: %s=%s deleted", s.kind, id.Hex())
	return nil
}

func (s *Service[T]) mapRepoError(op string, err error) error {
	if errors.Is(err, catalogRepo.ErrNotFound) {
		s.logger.Warn("%s: %s not found", op, s.kind)
		return ErrItemNotFound
	}
	s.logger.Error("%s: %s repository error: %v", op, s.kind, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
