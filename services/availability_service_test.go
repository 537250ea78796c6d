package services

import (
	"testing"

	"github.com/healthsync/api/models"
	"github.com/stretchr/testify/assert"
)

func slot(start, end string, blocked bool) models.AvailabilitySlot {
	return models.AvailabilitySlot{StartTime: start, EndTime: end, IsBooked: blocked}
}

func Test_bookableSlots(t *testing.T) {
	cases := []struct {
		name     string
		slots    []models.AvailabilitySlot
		counts   map[string]int
		expected []BookableSlot
	}{
		{
			name:     "no slots",
			slots:    nil,
			counts:   map[string]int{},
			expected: []BookableSlot{},
		},
		{
			name:   "slot with no bookings has full capacity",
			slots:  []models.AvailabilitySlot{slot("09:00", "10:00", false)},
			counts: map[string]int{},
			expected: []BookableSlot{
				{StartTime: "09:00", EndTime: "10:00", DisplayTime: "09:00 - 10:00", SpotsRemaining: 5, IsAvailable: true},
			},
		},
		{
			name:   "three bookings leave two spots",
			slots:  []models.AvailabilitySlot{slot("09:00", "10:00", false)},
			counts: map[string]int{"09:00 - 10:00": 3},
			expected: []BookableSlot{
				{StartTime: "09:00", EndTime: "10:00", DisplayTime: "09:00 - 10:00", SpotsRemaining: 2, IsAvailable: true},
			},
		},
		{
			name:     "full slot is excluded",
			slots:    []models.AvailabilitySlot{slot("09:00", "10:00", false)},
			counts:   map[string]int{"09:00 - 10:00": 5},
			expected: []BookableSlot{},
		},
		{
			name:     "overbooked slot is excluded",
			slots:    []models.AvailabilitySlot{slot("09:00", "10:00", false)},
			counts:   map[string]int{"09:00 - 10:00": 7},
			expected: []BookableSlot{},
		},
		{
			name:     "manually blocked slot is excluded even when empty",
			slots:    []models.AvailabilitySlot{slot("09:00", "10:00", true)},
			counts:   map[string]int{},
			expected: []BookableSlot{},
		},
		{
			name: "stored order is preserved without re-sorting",
			slots: []models.AvailabilitySlot{
				slot("14:00", "15:00", false),
				slot("09:00", "10:00", false),
			},
			counts: map[string]int{},
			expected: []BookableSlot{
				{StartTime: "14:00", EndTime: "15:00", DisplayTime: "14:00 - 15:00", SpotsRemaining: 5, IsAvailable: true},
				{StartTime: "09:00", EndTime: "10:00", DisplayTime: "09:00 - 10:00", SpotsRemaining: 5, IsAvailable: true},
			},
		},
		{
			name: "duplicate slots are tolerated and both reported",
			slots: []models.AvailabilitySlot{
				slot("09:00", "10:00", false),
				slot("09:00", "10:00", false),
			},
			counts: map[string]int{"09:00 - 10:00": 4},
			expected: []BookableSlot{
				{StartTime: "09:00", EndTime: "10:00", DisplayTime: "09:00 - 10:00", SpotsRemaining: 1, IsAvailable: true},
				{StartTime: "09:00", EndTime: "10:00", DisplayTime: "09:00 - 10:00", SpotsRemaining: 1, IsAvailable: true},
			},
		},
		{
			name: "mixed day",
			slots: []models.AvailabilitySlot{
				slot("09:00", "10:00", false),
				slot("10:00", "11:00", true),
				slot("11:00", "12:00", false),
			},
			counts: map[string]int{"11:00 - 12:00": 5},
			expected: []BookableSlot{
				{StartTime: "09:00", EndTime: "10:00", DisplayTime: "09:00 - 10:00", SpotsRemaining: 5, IsAvailable: true},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, bookableSlots(c.slots, c.counts))
		})
	}
}

func Test_bookableSlots_neverReturnsExhaustedSlots(t *testing.T) {
	slots := []models.AvailabilitySlot{
		slot("09:00", "10:00", false),
		slot("10:00", "11:00", false),
		slot("11:00", "12:00", false),
	}
	for count := 0; count <= 10; count++ {
		counts := map[string]int{
			"09:00 - 10:00": count,
			"10:00 - 11:00": count,
			"11:00 - 12:00": count,
		}
		for _, s := range bookableSlots(slots, counts) {
			assert.Greater(t, s.SpotsRemaining, 0)
			assert.True(t, s.IsAvailable)
		}
	}
}

func Test_scheduleForDay(t *testing.T) {
	entries := []models.DoctorAvailability{
		{Day: "Monday", Slots: []models.AvailabilitySlot{slot("09:00", "10:00", false)}},
		{Day: "Wednesday"},
	}

	entry, scheduled := scheduleForDay(entries, "Monday")
	assert.True(t, scheduled)
	assert.Equal(t, "Monday", entry.Day)

	// A day with an entry but no slots is still a scheduled day.
	entry, scheduled = scheduleForDay(entries, "Wednesday")
	assert.True(t, scheduled)
	assert.Empty(t, entry.Slots)

	entry, scheduled = scheduleForDay(entries, "Sunday")
	assert.False(t, scheduled)
	assert.Nil(t, entry)

	_, scheduled = scheduleForDay(nil, "Monday")
	assert.False(t, scheduled)
}

func Test_bookableSlots_isDeterministic(t *testing.T) {
	slots := []models.AvailabilitySlot{
		slot("09:00", "10:00", false),
		slot("10:00", "11:00", true),
	}
	counts := map[string]int{"09:00 - 10:00": 2}

	first := bookableSlots(slots, counts)
	second := bookableSlots(slots, counts)
	assert.Equal(t, first, second)
}
