package domain

// Default values applied when a business does not configure its own
const (
	DefaultPricePerGuest             = 75.0
	DefaultPrivatisationRatePerGuest = 100.0
	DefaultSlotFrequencyMinutes      = 30
	DefaultMaxReservationsPerSlot    = 10
	DefaultMaxPartySize              = 10
	DefaultCurrency                  = "EUR"
)

// Business validation constants
const (
	SlotFrequencyStepMinutes = 5
	MinPartySize             = 1
	MaxNotesLength           = 1000
	MaxNameLength            = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses reservations in these statuses do not occupy a slot
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses reservations in these statuses occupy a slot
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// CancellableStatuses reservations that can still be cancelled
var CancellableStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
