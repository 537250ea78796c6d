package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/healthsync/api/models"
	"github.com/stretchr/testify/assert"
)

func TestTransitionPolicy_Allowed(t *testing.T) {
	cases := []struct {
		name                 string
		from                 string
		to                   string
		allowConfirmedCancel bool
		expected             bool
	}{
		{"pending to confirmed", models.StatusPending, models.StatusConfirmed, false, true},
		{"confirmed to completed", models.StatusConfirmed, models.StatusCompleted, false, true},
		{"pending to cancelled", models.StatusPending, models.StatusCancelled, false, true},
		{"confirmed to cancelled when allowed", models.StatusConfirmed, models.StatusCancelled, true, true},
		{"confirmed to cancelled when disallowed", models.StatusConfirmed, models.StatusCancelled, false, false},
		{"pending to completed skips confirmation", models.StatusPending, models.StatusCompleted, true, false},
		{"completed is terminal", models.StatusCompleted, models.StatusCancelled, true, false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusConfirmed, true, false},
		{"no backwards transition", models.StatusConfirmed, models.StatusPending, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			policy := TransitionPolicy{AllowConfirmedCancellation: c.allowConfirmedCancel}
			assert.Equal(t, c.expected, policy.Allowed(c.from, c.to))
		})
	}
}

func TestTransitionPolicy_Authorized(t *testing.T) {
	policy := TransitionPolicy{AllowConfirmedCancellation: true}

	patientID := uuid.New()
	doctorID := uuid.New()
	otherDoctorID := uuid.New()
	appointment := &models.Appointment{PatientID: patientID, DoctorID: doctorID}

	cases := []struct {
		name          string
		to            string
		actor         Actor
		actorDoctorID uuid.UUID
		expected      bool
	}{
		{"owning doctor confirms", models.StatusConfirmed, Actor{Role: models.RoleDoctor}, doctorID, true},
		{"other doctor cannot confirm", models.StatusConfirmed, Actor{Role: models.RoleDoctor}, otherDoctorID, false},
		{"admin confirms", models.StatusConfirmed, Actor{Role: models.RoleAdmin}, uuid.Nil, true},
		{"patient cannot confirm", models.StatusConfirmed, Actor{UserID: patientID, Role: models.RolePatient}, uuid.Nil, false},
		{"owning doctor completes", models.StatusCompleted, Actor{Role: models.RoleDoctor}, doctorID, true},
		{"other doctor cannot complete", models.StatusCompleted, Actor{Role: models.RoleDoctor}, otherDoctorID, false},
		{"owning patient cancels", models.StatusCancelled, Actor{UserID: patientID, Role: models.RolePatient}, uuid.Nil, true},
		{"other patient cannot cancel", models.StatusCancelled, Actor{UserID: uuid.New(), Role: models.RolePatient}, uuid.Nil, false},
		{"admin cancels", models.StatusCancelled, Actor{UserID: uuid.New(), Role: models.RoleAdmin}, uuid.Nil, true},
		{"doctor cannot cancel for the patient", models.StatusCancelled, Actor{UserID: uuid.New(), Role: models.RoleDoctor}, doctorID, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, policy.Authorized(c.to, c.actor, appointment, c.actorDoctorID))
		})
	}
}

func TestUpdateAppointmentInput_touchesClinicalFields(t *testing.T) {
	notes := "rest"
	status := models.StatusConfirmed

	assert.False(t, UpdateAppointmentInput{}.touchesClinicalFields())
	assert.False(t, UpdateAppointmentInput{Status: &status}.touchesClinicalFields())
	assert.True(t, UpdateAppointmentInput{Notes: &notes}.touchesClinicalFields())
	assert.True(t, UpdateAppointmentInput{Prescription: &notes}.touchesClinicalFields())
	assert.True(t, UpdateAppointmentInput{Diagnosis: &notes}.touchesClinicalFields())
}
