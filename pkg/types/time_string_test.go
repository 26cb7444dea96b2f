package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "09:30", want: "09:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "surrounding spaces", input: " 18:00 ", want: "18:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "12:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("11:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 690, m)

	_, err = TimeString("xx").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("12:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:30"), got)

	got, err = TimeString("09:45").AddMinutes(75)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.True(t, TimeString("18:30").IsAfter("18:00"))
	assert.False(t, TimeString("bad").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("bad"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 1, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
	assert.NoError(t, ts.Validate())
	assert.False(t, ts.IsZero())
	assert.True(t, TimeString("").IsZero())
}
