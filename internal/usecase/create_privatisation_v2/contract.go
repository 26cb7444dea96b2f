package create_privatisation_v2

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) (*domain.Business, error)
}

// TotalCalculator интерфейс расчета суммы приватизации
type TotalCalculator interface {
	PrivatisationTotal(partySize int) float64
}

// HookRunner интерфейс пост-коммит хуков
type HookRunner interface {
	Run(ctx context.Context, r *domain.Reservation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
