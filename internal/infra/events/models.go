package events

import (
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// ReservationCreatedEvent событие создания бронирования
type ReservationCreatedEvent struct {
	ReservationID string    `json:"reservationId"`
	BusinessID    string    `json:"businessId"`
	BusinessType  string    `json:"businessType"`
	Kind          string    `json:"kind"`
	PartySize     int       `json:"partySize"`
	Date          string    `json:"date"`
	Time          string    `json:"time,omitempty"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewReservationCreatedEvent строит событие из бронирования
func NewReservationCreatedEvent(r *domain.Reservation, now time.Time) ReservationCreatedEvent {
	return ReservationCreatedEvent{
		ReservationID: r.ID.Hex(),
		BusinessID:    r.BusinessID.Hex(),
		BusinessType:  string(r.BusinessType),
		Kind:          string(r.Kind),
		PartySize:     r.PartySize,
		Date:          r.Date.Format(domain.DateFormat),
		Time:          r.Time.String(),
		TotalAmount:   r.TotalAmount,
		Status:        string(r.Status),
		OccurredAt:    now.UTC(),
	}
}
