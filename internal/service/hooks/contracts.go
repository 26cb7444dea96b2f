package hooks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/infra/events"
)

// Hook побочное действие после сохранения бронирования
type Hook interface {
	Name() string
	Run(ctx context.Context, r *domain.Reservation) error
}

// InvoiceGenerator интерфейс генератора счетов
type InvoiceGenerator interface {
	Generate(ctx context.Context, r *domain.Reservation) (*domain.Invoice, error)
}

// AvailabilityInvalidator интерфейс сброса кэша занятости
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, businessID string, date time.Time) error
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, event events.ReservationCreatedEvent) error
}

// MetricsRecorder интерфейс бизнес-метрик
type MetricsRecorder interface {
	IncReservation(businessType, kind string)
	IncHookFailure(hook string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
