package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xsalon/scheduling-service/pkg/types"
)

func TestFitsBusinessHours(t *testing.T) {
	open := &CalendarRule{Weekday: 1, OpeningTime: "08:00", ClosingTime: "20:00"}

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{"at opening", "08:00", 30, true},
		{"mid day", "12:15", 45, true},
		{"ends exactly at close", "19:30", 30, true},
		{"runs past close", "19:45", 30, false},
		{"before opening", "07:45", 30, false},
		{"starts at close", "20:00", 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := open.FitsBusinessHours(types.TimeString(tt.start), tt.duration)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFitsBusinessHoursClosedDay(t *testing.T) {
	closed := &CalendarRule{Weekday: 0, IsClosed: true}
	assert.False(t, closed.FitsBusinessHours("10:00", 30))

	missingHours := &CalendarRule{Weekday: 2}
	assert.False(t, missingHours.FitsBusinessHours("10:00", 30))
}

func TestRuleOpen(t *testing.T) {
	assert.True(t, (&CalendarRule{OpeningTime: "08:00", ClosingTime: "20:00"}).Open())
	assert.False(t, (&CalendarRule{OpeningTime: "08:00", ClosingTime: "20:00", IsClosed: true}).Open())
	assert.False(t, (&CalendarRule{}).Open())
}
