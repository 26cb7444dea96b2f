package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// Item элемент каталога бизнеса
type Item interface {
	domain.Service | domain.Staff | domain.Table | domain.Room
	Owner() primitive.ObjectID
	Validate() error
}

// Repository интерфейс репозитория элементов каталога
type Repository[T Item] interface {
	Create(ctx context.Context, item *T) (*T, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	ListByBusiness(ctx context.Context, businessID primitive.ObjectID, businessType *domain.BusinessType) ([]*T, error)
	Replace(ctx context.Context, item *T) (*T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
