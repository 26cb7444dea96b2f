package update_restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
)

// UseCase use case для обновления ресторана и его настроек
type UseCase struct {
	businessRepo BusinessRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(businessRepo BusinessRepository, logger Logger) *UseCase {
	return &UseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// Execute выполняет use case. Настройки проверяются после слияния с сохраненными,
// до любой записи; все изменения сохраняются одним обновлением.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateRestaurant: id=%s, settings=%t", req.ID.Hex(), req.Settings != nil)

	// 1. Проверка прав
	if err := domain.AuthorizeBusiness(ctx, req.ID); err != nil {
		uc.logger.Warn("UpdateRestaurant: access denied to id=%s: %v", req.ID.Hex(), err)
		return nil, err
	}

	// 2. Валидация общих полей
	if err := req.Patch.Validate(); err != nil {
		uc.logger.Warn("UpdateRestaurant: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем ресторан
	restaurant, err := uc.businessRepo.GetByID(ctx, req.ID, domain.BusinessTypeRestaurant)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("UpdateRestaurant: restaurant id=%s not found", req.ID.Hex())
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("UpdateRestaurant: failed to get restaurant id=%s: %v", req.ID.Hex(), err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	// 4. Слияние и проверка настроек, пересчет теоретической вместимости
	if req.Settings != nil {
		merged := req.Settings.Merge(restaurant.RestaurantSettings())
		if err := domain.ValidateRestaurantSettings(merged, req.Settings.TotalCapacity != nil); err != nil {
			uc.logger.Warn("UpdateRestaurant: invalid settings for id=%s: %v", req.ID.Hex(), err)
			return nil, err
		}
		restaurant.Settings = &merged
	}

	// 5. Применяем изменения и сохраняем одним обновлением
	req.Patch.Apply(restaurant)

	updated, err := uc.businessRepo.Update(ctx, restaurant)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("UpdateRestaurant: failed to update id=%s: %v", req.ID.Hex(), err)
		return nil, fmt.Errorf("%w: failed to update restaurant: %v", ErrInternal, err)
	}

	if updated.Settings != nil {
		uc.logger.Info("UpdateRestaurant: id=%s updated, theoretical capacity=%d",
			req.ID.Hex(), updated.Settings.TheoreticalCapacity)
	}
	return &Response{Restaurant: updated}, nil
}
