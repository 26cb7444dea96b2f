package privatisation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// OptionRepository интерфейс репозитория опций приватизации
type OptionRepository interface {
	Create(ctx context.Context, opt *domain.PrivatisationOption) (*domain.PrivatisationOption, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PrivatisationOption, error)
	ListByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]*domain.PrivatisationOption, error)
	Update(ctx context.Context, opt *domain.PrivatisationOption) (*domain.PrivatisationOption, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
