package hooks

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/infra/events"
	"github.com/m04kA/SMC-HospitalityService/internal/service/invoices"
)

// InvoiceHook выставляет счет на сумму бронирования
type InvoiceHook struct {
	generator InvoiceGenerator
}

// NewInvoiceHook создает хук выставления счета
func NewInvoiceHook(generator InvoiceGenerator) *InvoiceHook {
	return &InvoiceHook{generator: generator}
}

func (h *InvoiceHook) Name() string { return "invoice" }

func (h *InvoiceHook) Run(ctx context.Context, r *domain.Reservation) error {
	if r.TotalAmount <= 0 {
		return nil
	}
	_, err := h.generator.Generate(ctx, r)
	if errors.Is(err, invoices.ErrNothingToInvoice) {
		return nil
	}
	return err
}

// AvailabilityHook сбрасывает кэш занятости ресторана на дату бронирования
type AvailabilityHook struct {
	cache AvailabilityInvalidator
}

// NewAvailabilityHook создает хук сброса кэша
func NewAvailabilityHook(cache AvailabilityInvalidator) *AvailabilityHook {
	return &AvailabilityHook{cache: cache}
}

func (h *AvailabilityHook) Name() string { return "availability_cache" }

func (h *AvailabilityHook) Run(ctx context.Context, r *domain.Reservation) error {
	if r.BusinessType != domain.BusinessTypeRestaurant {
		return nil
	}
	return h.cache.Invalidate(ctx, r.BusinessID.Hex(), r.Date)
}

// EventHook публикует событие reservation.created
type EventHook struct {
	publisher EventPublisher
	now       func() time.Time
}

// NewEventHook создает хук публикации события
func NewEventHook(publisher EventPublisher) *EventHook {
	return &EventHook{publisher: publisher, now: time.Now}
}

func (h *EventHook) Name() string { return "event" }

func (h *EventHook) Run(ctx context.Context, r *domain.Reservation) error {
	return h.publisher.PublishReservationCreated(ctx, events.NewReservationCreatedEvent(r, h.now()))
}

// Chain собирает хуки в порядке выполнения: счет, кэш, событие.
// Кэш и публикатор необязательны (nil - хук не добавляется).
func Chain(generator InvoiceGenerator, cache AvailabilityInvalidator, publisher EventPublisher) []Hook {
	chain := []Hook{NewInvoiceHook(generator)}
	if cache != nil {
		chain = append(chain, NewAvailabilityHook(cache))
	}
	if publisher != nil {
		chain = append(chain, NewEventHook(publisher))
	}
	return chain
}
