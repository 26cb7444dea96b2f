package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

func TestResolver_PricePerGuest(t *testing.T) {
	windows := []domain.TimeWindow{
		{Open: "09:00", Close: "12:00", PricePerGuest: 50},
		{Open: "12:00", Close: "18:00", PricePerGuest: 70},
	}
	r := NewResolver(75, logger.Nop{})

	tests := []struct {
		name string
		at   types.TimeString
		want float64
	}{
		{name: "inside first window", at: "11:30", want: 50},
		{name: "window start is inclusive", at: "09:00", want: 50},
		{name: "window end is exclusive", at: "12:00", want: 70},
		{name: "no match", at: "18:30", want: 75},
		{name: "before any window", at: "08:59", want: 75},
		{name: "invalid time", at: "noon", want: 75},
		{name: "short hour format", at: "9:15", want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.PricePerGuest(windows, tt.at))
		})
	}
}

func TestResolver_FirstMatchWins(t *testing.T) {
	r := NewResolver(75, logger.Nop{})
	overlapping := []domain.TimeWindow{
		{Open: "12:00", Close: "15:00", PricePerGuest: 40},
		{Open: "11:00", Close: "16:00", PricePerGuest: 90},
	}
	assert.Equal(t, 40.0, r.PricePerGuest(overlapping, "13:00"))
	assert.Equal(t, 90.0, r.PricePerGuest(overlapping, "11:30"))
}

func TestResolver_UnsetPriceUsesDefault(t *testing.T) {
	r := NewResolver(75, logger.Nop{})
	windows := []domain.TimeWindow{
		{Open: "12:00", Close: "15:00", PricePerGuest: 0},
		{Open: "12:00", Close: "15:00", PricePerGuest: 90},
	}
	assert.Equal(t, 75.0, r.PricePerGuest(windows, "13:00"))
}

func TestResolver_BrokenWindowUsesDefault(t *testing.T) {
	r := NewResolver(75, logger.Nop{})
	windows := []domain.TimeWindow{
		{Open: "25:00", Close: "26:00", PricePerGuest: 10},
		{Open: "12:00", Close: "15:00", PricePerGuest: 90},
	}
	assert.Equal(t, 75.0, r.PricePerGuest(windows, "13:00"))
}

func TestResolver_SkipsIncompleteWindows(t *testing.T) {
	r := NewResolver(0, logger.Nop{})
	windows := []domain.TimeWindow{
		{Open: "12:00", PricePerGuest: 10},
		{Open: "12:00", Close: "15:00", PricePerGuest: 90},
	}
	assert.Equal(t, 90.0, r.PricePerGuest(windows, "13:00"))
	assert.Equal(t, domain.DefaultPricePerGuest, r.DefaultPrice())
}
