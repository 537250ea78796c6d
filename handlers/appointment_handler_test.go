package handlers

import (
	"testing"
	"time"

	"github.com/healthsync/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_statusNotificationDue(t *testing.T) {
	cases := []struct {
		name    string
		changed bool
		status  string
		due     bool
	}{
		{name: "fresh confirmation notifies", changed: true, status: models.StatusConfirmed, due: true},
		{name: "fresh cancellation notifies", changed: true, status: models.StatusCancelled, due: true},
		{name: "re-submitted confirmation stays silent", changed: false, status: models.StatusConfirmed, due: false},
		{name: "re-submitted cancellation stays silent", changed: false, status: models.StatusCancelled, due: false},
		{name: "completion is not mailed", changed: true, status: models.StatusCompleted, due: false},
		{name: "clinical-only update stays silent", changed: false, status: models.StatusPending, due: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.due, statusNotificationDue(c.changed, c.status))
		})
	}
}

func Test_parseAppointmentDate(t *testing.T) {
	got, err := parseAppointmentDate("2026-09-14T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC), got)

	got, err = parseAppointmentDate("2026-09-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), got)

	_, err = parseAppointmentDate("14/09/2026")
	assert.Error(t, err)
}
