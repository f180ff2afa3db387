package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"0900", true},
		{"", true},
		{"abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := TimeString("bogus").Minutes()
	assert.Error(t, err)
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		start TimeString
		add   int
		want  TimeString
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:45", 30, "00:15"}, // wraps past midnight
		{"00:15", -30, "23:45"},
		{"10:00", 0, "10:00"},
	}
	for _, tt := range tests {
		got, err := tt.start.AddMinutes(tt.add)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestTimeStringOn(t *testing.T) {
	date := time.Date(2025, 11, 3, 17, 42, 13, 0, time.UTC)

	got, err := TimeString("09:30").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC), got)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan("14:15:00"))
	assert.Equal(t, TimeString("14:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
