package create_reservation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) (*domain.Business, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error)
}

// RoomRepository интерфейс каталога номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Room, error)
}

// PriceResolver интерфейс выбора цены за гостя по времени
type PriceResolver interface {
	PricePerGuest(windows []domain.TimeWindow, at types.TimeString) float64
	DefaultPrice() float64
}

// TotalCalculator интерфейс расчета суммы
type TotalCalculator interface {
	StandardTotal(partySize int, pricePerGuest float64) float64
	StayTotal(nights int, pricePerNight float64) float64
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
