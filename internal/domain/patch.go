package domain

import "github.com/m04kA/SMC-HospitalityService/pkg/types"

// BusinessPatch is a partial update of a business. Nil fields are left untouched.
type BusinessPatch struct {
	Name        *string
	Description *string
	Address     *Address
	Contact     *Contact
	Images      *[]string
	IsActive    *bool

	Cuisine        *[]string
	OpeningPeriods *[]OpeningPeriod
	Amenities      *[]string
	StarRating     *int
	Specialties    *[]string
}

// Apply writes the non-nil fields of the patch into b
func (p BusinessPatch) Apply(b *Business) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.Contact != nil {
		b.Contact = *p.Contact
	}
	if p.Images != nil {
		b.Images = *p.Images
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
	if p.Cuisine != nil {
		b.Cuisine = *p.Cuisine
	}
	if p.OpeningPeriods != nil {
		b.OpeningPeriods = *p.OpeningPeriods
	}
	if p.Amenities != nil {
		b.Amenities = *p.Amenities
	}
	if p.StarRating != nil {
		b.StarRating = *p.StarRating
	}
	if p.Specialties != nil {
		b.Specialties = *p.Specialties
	}
}

// Validate checks the fields common to every business type
func (p BusinessPatch) Validate() error {
	if p.Name != nil && (*p.Name == "" || len(*p.Name) > MaxNameLength) {
		return NewValidationError("name", "name must be between 1 and 200 characters")
	}
	if p.StarRating != nil && (*p.StarRating < 0 || *p.StarRating > 5) {
		return NewValidationError("starRating", "star rating must be between 0 and 5")
	}
	if p.OpeningPeriods != nil {
		for _, op := range *p.OpeningPeriods {
			if op.EndDate.Before(op.StartDate) {
				return NewValidationError("openingPeriods", "opening period must end after it starts")
			}
		}
	}
	return nil
}

// SettingsPatch is a partial update of restaurant settings
type SettingsPatch struct {
	TimeWindows            *[]TimeWindow
	TotalCapacity          *int
	Tables                 *TableInventory
	CustomTables           *[]CustomTable
	SlotFrequencyMinutes   *int
	MaxReservationsPerSlot *int
	Closures               *[]ClosurePeriod
	OpenDays               *[]string
	Currency               *string
	Timezone               *string
	TaxRate                *float64
	ServiceFee             *float64
	MaxPartySize           *int
	ReservationWindow      *int
	CancellationHours      *int
}

// Merge returns the stored settings with the patch applied.
// TheoreticalCapacity is recomputed from the merged inventory.
func (p SettingsPatch) Merge(s RestaurantSettings) RestaurantSettings {
	if p.TimeWindows != nil {
		s.TimeWindows = normalizeWindows(*p.TimeWindows)
	}
	if p.TotalCapacity != nil {
		s.TotalCapacity = *p.TotalCapacity
	}
	if p.Tables != nil {
		s.Tables = *p.Tables
	}
	if p.CustomTables != nil {
		s.CustomTables = *p.CustomTables
	}
	if p.SlotFrequencyMinutes != nil {
		s.SlotFrequencyMinutes = *p.SlotFrequencyMinutes
	}
	if p.MaxReservationsPerSlot != nil {
		s.MaxReservationsPerSlot = *p.MaxReservationsPerSlot
	}
	if p.Closures != nil {
		s.Closures = *p.Closures
	}
	if p.OpenDays != nil {
		s.OpenDays = *p.OpenDays
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Timezone != nil {
		s.Timezone = *p.Timezone
	}
	if p.TaxRate != nil {
		s.TaxRate = *p.TaxRate
	}
	if p.ServiceFee != nil {
		s.ServiceFee = *p.ServiceFee
	}
	if p.MaxPartySize != nil {
		s.MaxPartySize = *p.MaxPartySize
	}
	if p.ReservationWindow != nil {
		s.ReservationWindow = *p.ReservationWindow
	}
	if p.CancellationHours != nil {
		s.CancellationHours = *p.CancellationHours
	}

	s.TheoreticalCapacity = TheoreticalCapacity(s.Tables, s.CustomTables)
	return s
}

// normalizeWindows pads "9:00" to "09:00"; invalid values are kept for the validator to report
func normalizeWindows(in []TimeWindow) []TimeWindow {
	out := make([]TimeWindow, len(in))
	for i, w := range in {
		out[i] = w
		if ts, err := types.NewTimeStringFromString(string(w.Open)); err == nil {
			out[i].Open = ts
		}
		if ts, err := types.NewTimeStringFromString(string(w.Close)); err == nil {
			out[i].Close = ts
		}
	}
	return out
}
