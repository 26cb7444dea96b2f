package businesses

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) (*domain.Business, error)
	List(ctx context.Context, businessType domain.BusinessType, activeOnly bool) ([]*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) (*domain.Business, error)
	Deactivate(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
