package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidClockTime(t *testing.T) {
	cases := []struct {
		value    string
		expected bool
	}{
		{"00:00", true},
		{"09:05", true},
		{"14:35", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"9:05", false},
		{"09:5", false},
		{"0905", false},
		{"09-05", false},
		{"ab:cd", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ValidClockTime(c.value), "value %q", c.value)
	}
}

func TestAvailabilitySlot_Label(t *testing.T) {
	slot := AvailabilitySlot{StartTime: "09:00", EndTime: "10:00"}
	assert.Equal(t, "09:00 - 10:00", slot.Label())
}

func TestIsWeekday(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, IsWeekday(day))
	}
	assert.False(t, IsWeekday("monday"))
	assert.False(t, IsWeekday("Someday"))
	assert.False(t, IsWeekday(""))
}
