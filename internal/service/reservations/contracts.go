package reservations

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ReservationPatch) (*domain.Reservation, error)
	Cancel(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AvailabilityInvalidator интерфейс сброса кэша занятости
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, businessID string, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
