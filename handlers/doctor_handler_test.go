package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_validateAvailabilityDays(t *testing.T) {
	day := func(name string, slots ...AvailabilitySlotRequest) AvailabilityDayRequest {
		return AvailabilityDayRequest{Day: name, Slots: slots}
	}
	slot := func(start, end string) AvailabilitySlotRequest {
		return AvailabilitySlotRequest{StartTime: start, EndTime: end}
	}

	cases := []struct {
		name    string
		days    []AvailabilityDayRequest
		wantErr string
	}{
		{
			name: "valid week",
			days: []AvailabilityDayRequest{
				day("Monday", slot("09:00", "10:00"), slot("10:00", "11:00")),
				day("Friday", slot("14:00", "15:00")),
			},
		},
		{
			name: "empty schedule is valid",
			days: nil,
		},
		{
			name:    "unknown weekday",
			days:    []AvailabilityDayRequest{day("Funday", slot("09:00", "10:00"))},
			wantErr: "Invalid weekday: Funday",
		},
		{
			name:    "lowercase weekday is rejected",
			days:    []AvailabilityDayRequest{day("monday", slot("09:00", "10:00"))},
			wantErr: "Invalid weekday: monday",
		},
		{
			name: "duplicate weekday entry",
			days: []AvailabilityDayRequest{
				day("Monday", slot("09:00", "10:00")),
				day("Tuesday", slot("09:00", "10:00")),
				day("Monday", slot("14:00", "15:00")),
			},
			wantErr: "Duplicate availability entry for Monday",
		},
		{
			name:    "malformed start time",
			days:    []AvailabilityDayRequest{day("Monday", slot("9:00", "10:00"))},
			wantErr: "Slot times must use HH:MM format",
		},
		{
			name:    "out of range end time",
			days:    []AvailabilityDayRequest{day("Monday", slot("09:00", "24:00"))},
			wantErr: "Slot times must use HH:MM format",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validateAvailabilityDays(c.days)
			if c.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, c.wantErr)
		})
	}
}
