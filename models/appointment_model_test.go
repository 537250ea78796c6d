package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CountsAgainstCapacity(t *testing.T) {
	cases := []struct {
		status   string
		expected bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, c := range cases {
		appointment := Appointment{Status: c.status}
		assert.Equal(t, c.expected, appointment.CountsAgainstCapacity(), "status %s", c.status)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Pending"))
}
