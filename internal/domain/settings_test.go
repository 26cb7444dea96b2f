package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() RestaurantSettings {
	s := DefaultRestaurantSettings()
	s.TimeWindows = []TimeWindow{
		{Open: "09:00", Close: "12:00", PricePerGuest: 50},
		{Open: "12:00", Close: "18:00", PricePerGuest: 70},
	}
	s.TotalCapacity = 40
	s.Tables = TableInventory{Size2: 4, Size4: 4}
	s.MaxReservationsPerSlot = 10
	return s
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, field, ve.Field)
}

func TestValidateRestaurantSettings_Valid(t *testing.T) {
	assert.NoError(t, ValidateRestaurantSettings(validSettings(), false))
}

func TestValidateRestaurantSettings_WindowOrder(t *testing.T) {
	for _, w := range []TimeWindow{
		{Open: "12:00", Close: "12:00"},
		{Open: "18:00", Close: "09:00"},
		{Open: "23:59", Close: "00:00"},
	} {
		s := validSettings()
		s.TimeWindows = append(s.TimeWindows, w)
		requireFieldError(t, ValidateRestaurantSettings(s, false), FieldTimeWindows)
	}
}

func TestValidateRestaurantSettings_WindowFormat(t *testing.T) {
	s := validSettings()
	s.TimeWindows = []TimeWindow{{Open: "9h", Close: "12:00"}}
	requireFieldError(t, ValidateRestaurantSettings(s, false), FieldTimeWindows)
}

func TestValidateRestaurantSettings_IncompleteWindowIgnored(t *testing.T) {
	s := validSettings()
	s.TimeWindows = []TimeWindow{{Open: "12:00"}}
	assert.NoError(t, ValidateRestaurantSettings(s, false))
}

func TestValidateRestaurantSettings_SlotFrequency(t *testing.T) {
	for _, f := range []int{0, -5, 7, 12, 31} {
		s := validSettings()
		s.SlotFrequencyMinutes = f
		requireFieldError(t, ValidateRestaurantSettings(s, false), FieldSlotFrequency)
	}
	for _, f := range []int{5, 15, 30, 45} {
		s := validSettings()
		s.SlotFrequencyMinutes = f
		assert.NoError(t, ValidateRestaurantSettings(s, false), "frequency %d", f)
	}
}

func TestValidateRestaurantSettings_LimitOverTotalCapacity(t *testing.T) {
	s := validSettings()
	s.TotalCapacity = 5
	s.MaxReservationsPerSlot = 6

	err := ValidateRestaurantSettings(s, false)
	requireFieldError(t, err, FieldMaxReservationsPerSlot)
	assert.Contains(t, err.Error(), MsgLimitOverTotal)
}

func TestValidateRestaurantSettings_DeclaredZeroTotalCapacity(t *testing.T) {
	s := validSettings()
	s.TotalCapacity = 0
	s.MaxReservationsPerSlot = 5

	requireFieldError(t, ValidateRestaurantSettings(s, true), FieldMaxReservationsPerSlot)
	assert.NoError(t, ValidateRestaurantSettings(s, false))
}

func TestValidateRestaurantSettings_LimitOverTheoreticalCapacity(t *testing.T) {
	s := validSettings()
	s.TotalCapacity = 100
	s.Tables = TableInventory{Size2: 2, Size4: 1} // 8 seats
	s.MaxReservationsPerSlot = 9

	err := ValidateRestaurantSettings(s, false)
	requireFieldError(t, err, FieldMaxReservationsPerSlot)
	assert.Contains(t, err.Error(), MsgLimitOverTheoretical)
}

func TestValidateRestaurantSettings_NoInventorySkipsTheoreticalCheck(t *testing.T) {
	s := validSettings()
	s.Tables = TableInventory{}
	s.CustomTables = nil
	s.TotalCapacity = 0
	s.MaxReservationsPerSlot = 50
	assert.NoError(t, ValidateRestaurantSettings(s, false))
}

func TestValidateRestaurantSettings_ClosuresAndDays(t *testing.T) {
	s := validSettings()
	s.Closures = []ClosurePeriod{{
		Start: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
	}}
	requireFieldError(t, ValidateRestaurantSettings(s, false), FieldClosures)

	s = validSettings()
	s.OpenDays = []string{"Monday", "Funday"}
	requireFieldError(t, ValidateRestaurantSettings(s, false), FieldOpenDays)
}

func TestRestaurantSettings_IsClosedOn(t *testing.T) {
	s := validSettings()
	s.Closures = []ClosurePeriod{{
		Start: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
	}}
	s.OpenDays = []string{"monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	assert.True(t, s.IsClosedOn(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)), "closure")
	assert.True(t, s.IsClosedOn(time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)), "closure end inclusive")
	assert.True(t, s.IsClosedOn(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)), "sunday")
	assert.False(t, s.IsClosedOn(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)), "monday")
}

func TestTimeWindow_Contains(t *testing.T) {
	w := TimeWindow{Open: "09:00", Close: "12:00"}

	ok, err := w.Contains("09:00")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = w.Contains("12:00")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = w.Contains("bad")
	assert.Error(t, err)
}
