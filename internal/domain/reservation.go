package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// ParseReservationStatus validates a status string
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return st, nil
	default:
		return "", NewValidationError("status", fmt.Sprintf("unknown reservation status %q", s))
	}
}

// ReservationKind separates table reservations from privatisations
type ReservationKind string

const (
	KindStandard      ReservationKind = "standard"
	KindPrivatisation ReservationKind = "privatisation"
)

// CustomerInfo is the contact of the guest who booked
type CustomerInfo struct {
	Name  string `bson:"name,omitempty"`
	Email string `bson:"email,omitempty"`
	Phone string `bson:"phone,omitempty"`
}

// PrivatisationDetails describes the product chosen for a privatisation.
// The option is referenced by name, not by id.
type PrivatisationDetails struct {
	Type          string `bson:"type"`
	Space         string `bson:"espace"`
	Menu          string `bson:"menu"`
	DurationHours int    `bson:"dureeHeures"`
}

// Reservation represents one booking of a business
type Reservation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID   primitive.ObjectID `bson:"businessId"`
	BusinessType BusinessType       `bson:"businessType"`
	Kind         ReservationKind    `bson:"kind"`
	CustomerID   string             `bson:"customerId,omitempty"`
	Customer     *CustomerInfo      `bson:"customerInfo,omitempty"`

	PartySize int              `bson:"partySize"`
	Date      time.Time        `bson:"date"`
	Time      types.TimeString `bson:"time,omitempty"`
	Duration  int              `bson:"duration,omitempty"` // hours
	CheckIn   *time.Time       `bson:"checkIn,omitempty"`
	CheckOut  *time.Time       `bson:"checkOut,omitempty"`
	Seating   string           `bson:"emplacement,omitempty"`

	RoomID    *primitive.ObjectID `bson:"roomId,omitempty"`
	TableID   *primitive.ObjectID `bson:"tableId,omitempty"`
	ServiceID *primitive.ObjectID `bson:"serviceId,omitempty"`
	StaffID   *primitive.ObjectID `bson:"staffId,omitempty"`

	Privatisation *PrivatisationDetails `bson:"privatisation,omitempty"`

	Status          ReservationStatus `bson:"status"`
	TotalAmount     float64           `bson:"totalAmount"`
	Notes           string            `bson:"notes,omitempty"`
	SpecialRequests string            `bson:"specialRequests,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// IsActive returns true if the reservation occupies its slot
func (r *Reservation) IsActive() bool {
	for _, s := range ActiveStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	for _, s := range CancellableStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// InvoiceDescription is the line item label of the reservation's invoice
func (r *Reservation) InvoiceDescription() string {
	if r.Kind == KindPrivatisation {
		return "Privatisation " + r.ID.Hex()
	}
	return "Reservation " + r.ID.Hex()
}

// Stay returns the interval a hotel reservation occupies.
// checkIn falls back to date, checkOut falls back to checkIn.
func (r *Reservation) Stay() (time.Time, time.Time) {
	start := r.Date
	if r.CheckIn != nil {
		start = *r.CheckIn
	}
	end := start
	if r.CheckOut != nil {
		end = *r.CheckOut
	}
	return start, end
}

// ReservationFilter selects reservations of one business
type ReservationFilter struct {
	BusinessID      primitive.ObjectID
	BusinessType    *BusinessType
	Status          *ReservationStatus
	Date            *time.Time
	IncludeInactive bool
}

// ReservationPatch is a partial update of a reservation.
// totalAmount is deliberately absent: it is always server-computed.
type ReservationPatch struct {
	Status          *ReservationStatus
	Date            *time.Time
	Time            *types.TimeString
	PartySize       *int
	Notes           *string
	SpecialRequests *string
	Customer        *CustomerInfo
}

// IsEmpty reports whether the patch changes nothing
func (p ReservationPatch) IsEmpty() bool {
	return p.Status == nil && p.Date == nil && p.Time == nil && p.PartySize == nil &&
		p.Notes == nil && p.SpecialRequests == nil && p.Customer == nil
}
