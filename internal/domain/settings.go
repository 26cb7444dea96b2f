package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// Field names reported in validation errors
const (
	FieldTimeWindows            = "horaires"
	FieldSlotFrequency          = "frequenceCreneauxMinutes"
	FieldMaxReservationsPerSlot = "maxReservationsParCreneau"
	FieldTotalCapacity          = "capaciteTotale"
	FieldTables                 = "tables"
	FieldCustomTables           = "customTables"
	FieldClosures               = "fermetures"
	FieldOpenDays               = "joursOuverts"
)

// Validation messages
const (
	MsgWindowOrder          = "L'heure d'ouverture doit être antérieure à l'heure de fermeture."
	MsgWindowFormat         = "Les horaires doivent être au format HH:MM."
	MsgSlotFrequency        = "La fréquence des créneaux doit être un nombre positif divisible par 5."
	MsgLimitOverTotal       = "La limite par créneau ne peut pas dépasser la capacité totale."
	MsgLimitOverTheoretical = "La limite par créneau ne peut pas dépasser la capacité théorique."
	MsgNegativeInventory    = "Le nombre de tables ne peut pas être négatif."
	MsgNegativeCapacity     = "La capacité ne peut pas être négative."
	MsgClosureRange         = "La date de début de fermeture doit précéder la date de fin."
	MsgUnknownWeekday       = "Jour d'ouverture inconnu."
)

// RestaurantSettings is the operating configuration of a restaurant
type RestaurantSettings struct {
	Currency          string  `bson:"currency,omitempty"`
	Timezone          string  `bson:"timezone,omitempty"`
	TaxRate           float64 `bson:"taxRate"`
	ServiceFee        float64 `bson:"serviceFee"`
	MaxPartySize      int     `bson:"maxPartySize"`
	ReservationWindow int     `bson:"reservationWindow"`
	CancellationHours int     `bson:"cancellationHours"`

	TimeWindows            []TimeWindow    `bson:"horaires"`
	TotalCapacity          int             `bson:"capaciteTotale"`
	Tables                 TableInventory  `bson:"tables"`
	CustomTables           []CustomTable   `bson:"customTables"`
	TheoreticalCapacity    int             `bson:"capaciteTheorique"`
	SlotFrequencyMinutes   int             `bson:"frequenceCreneauxMinutes"`
	MaxReservationsPerSlot int             `bson:"maxReservationsParCreneau"`
	Closures               []ClosurePeriod `bson:"fermetures"`
	OpenDays               []string        `bson:"joursOuverts"`
}

// DefaultRestaurantSettings returns the settings of a freshly created restaurant
func DefaultRestaurantSettings() RestaurantSettings {
	return RestaurantSettings{
		Currency:               DefaultCurrency,
		MaxPartySize:           DefaultMaxPartySize,
		SlotFrequencyMinutes:   DefaultSlotFrequencyMinutes,
		MaxReservationsPerSlot: DefaultMaxReservationsPerSlot,
	}
}

// TimeWindow is an opening window with its price per guest.
// A price <= 0 means "not configured".
type TimeWindow struct {
	Open          types.TimeString `bson:"ouverture"`
	Close         types.TimeString `bson:"fermeture"`
	PricePerGuest float64          `bson:"prix"`
}

// Contains reports whether open <= t < close
func (w TimeWindow) Contains(t types.TimeString) (bool, error) {
	at, err := t.Minutes()
	if err != nil {
		return false, err
	}
	open, err := w.Open.Minutes()
	if err != nil {
		return false, err
	}
	closeAt, err := w.Close.Minutes()
	if err != nil {
		return false, err
	}
	return open <= at && at < closeAt, nil
}

// TableInventory counts standard tables by seat count
type TableInventory struct {
	Size2 int `bson:"size2"`
	Size4 int `bson:"size4"`
	Size6 int `bson:"size6"`
	Size8 int `bson:"size8"`
}

// IsEmpty reports whether no standard table is declared
func (t TableInventory) IsEmpty() bool {
	return t.Size2 == 0 && t.Size4 == 0 && t.Size6 == 0 && t.Size8 == 0
}

// CustomTable is a non-standard table size and how many of them exist
type CustomTable struct {
	Size  int `bson:"taille"`
	Count int `bson:"nombre"`
}

// ClosurePeriod is an inclusive date range during which the restaurant is closed
type ClosurePeriod struct {
	Start time.Time `bson:"debut"`
	End   time.Time `bson:"fin"`
}

// HasInventory reports whether any table inventory is declared
func (s RestaurantSettings) HasInventory() bool {
	return !s.Tables.IsEmpty() || len(s.CustomTables) > 0
}

// IsClosedOn reports whether date falls inside a closure period
// or on a weekday missing from a non-empty OpenDays list.
func (s RestaurantSettings) IsClosedOn(date time.Time) bool {
	day := truncateDay(date)
	for _, c := range s.Closures {
		if !day.Before(truncateDay(c.Start)) && !day.After(truncateDay(c.End)) {
			return true
		}
	}

	if len(s.OpenDays) == 0 {
		return false
	}
	weekday := date.Weekday().String()
	for _, d := range s.OpenDays {
		if strings.EqualFold(d, weekday) {
			return false
		}
	}
	return true
}

// ValidateRestaurantSettings checks a proposed settings object before it is persisted.
// totalDeclared is set when the request carries capaciteTotale: a declared 0 is still
// checked, an absent value with no stored capacity is not.
// The first violated rule is returned as a *ValidationError.
func ValidateRestaurantSettings(s RestaurantSettings, totalDeclared bool) error {
	// 1. Окна работы: ouverture < fermeture
	for _, w := range s.TimeWindows {
		if w.Open.IsZero() || w.Close.IsZero() {
			continue
		}
		open, errOpen := w.Open.Minutes()
		closeAt, errClose := w.Close.Minutes()
		if errOpen != nil || errClose != nil {
			return NewValidationError(FieldTimeWindows, MsgWindowFormat)
		}
		if open >= closeAt {
			return NewValidationError(FieldTimeWindows, MsgWindowOrder)
		}
	}

	// 2. Частота слотов
	if s.SlotFrequencyMinutes <= 0 || s.SlotFrequencyMinutes%SlotFrequencyStepMinutes != 0 {
		return NewValidationError(FieldSlotFrequency, MsgSlotFrequency)
	}

	// 3. Инвентарь столов
	if s.Tables.Size2 < 0 || s.Tables.Size4 < 0 || s.Tables.Size6 < 0 || s.Tables.Size8 < 0 {
		return NewValidationError(FieldTables, MsgNegativeInventory)
	}
	for _, c := range s.CustomTables {
		if c.Size < 0 || c.Count < 0 {
			return NewValidationError(FieldCustomTables, MsgNegativeInventory)
		}
	}
	if s.TotalCapacity < 0 {
		return NewValidationError(FieldTotalCapacity, MsgNegativeCapacity)
	}

	// 4. Лимит на слот против заявленной и теоретической вместимости
	if (totalDeclared || s.TotalCapacity > 0) && s.MaxReservationsPerSlot > s.TotalCapacity {
		return NewValidationError(FieldMaxReservationsPerSlot, MsgLimitOverTotal)
	}
	if s.HasInventory() && s.MaxReservationsPerSlot > TheoreticalCapacity(s.Tables, s.CustomTables) {
		return NewValidationError(FieldMaxReservationsPerSlot, MsgLimitOverTheoretical)
	}

	// 5. Периоды закрытия и дни недели
	for _, c := range s.Closures {
		if c.End.Before(c.Start) {
			return NewValidationError(FieldClosures, MsgClosureRange)
		}
	}
	for _, d := range s.OpenDays {
		if !isWeekdayName(d) {
			return NewValidationError(FieldOpenDays, MsgUnknownWeekday)
		}
	}

	return nil
}

func isWeekdayName(s string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
