package get_availability

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) (*domain.Business, error)
}

// ReservationRepository интерфейс подсчета активных бронирований по слотам
type ReservationRepository interface {
	CountBySlot(ctx context.Context, businessID primitive.ObjectID, date time.Time) (map[types.TimeString]int, error)
}

// OccupancyCache интерфейс кэша занятости слотов
type OccupancyCache interface {
	Get(ctx context.Context, businessID string, date time.Time) (map[types.TimeString]int, bool, error)
	Set(ctx context.Context, businessID string, date time.Time, counts map[types.TimeString]int) error
}

// CacheMetrics интерфейс метрик кэша
type CacheMetrics interface {
	IncCache(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
