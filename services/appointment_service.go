package services

import (
	"errors"

	"github.com/google/uuid"
	config "github.com/healthsync/api/configs"
	"github.com/healthsync/api/httperr"
	"github.com/healthsync/api/models"
	"gorm.io/gorm"
)

// Actor identifies who is performing an operation, as supplied by the auth
// middleware. The core trusts it implicitly.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// TransitionPolicy is the appointment state machine. Whether a confirmed
// appointment may still be cancelled is a deployment choice.
type TransitionPolicy struct {
	AllowConfirmedCancellation bool
}

func DefaultTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{
		AllowConfirmedCancellation: config.Config("ALLOW_CONFIRMED_CANCELLATION") != "false",
	}
}

func (p TransitionPolicy) Allowed(from, to string) bool {
	switch {
	case from == models.StatusPending && to == models.StatusConfirmed:
		return true
	case from == models.StatusConfirmed && to == models.StatusCompleted:
		return true
	case from == models.StatusPending && to == models.StatusCancelled:
		return true
	case from == models.StatusConfirmed && to == models.StatusCancelled:
		return p.AllowConfirmedCancellation
	}
	return false
}

// Authorized reports whether the actor may drive the appointment into the
// target status. Confirm and complete belong to the owning doctor or an
// admin; cancel belongs to the owning patient or an admin. actorDoctorID is
// the doctor record of the acting user, uuid.Nil for non-doctors.
func (p TransitionPolicy) Authorized(to string, actor Actor, appointment *models.Appointment, actorDoctorID uuid.UUID) bool {
	switch to {
	case models.StatusConfirmed, models.StatusCompleted:
		if actor.Role == models.RoleAdmin {
			return true
		}
		return actor.Role == models.RoleDoctor && actorDoctorID == appointment.DoctorID
	case models.StatusCancelled:
		if actor.Role == models.RoleAdmin {
			return true
		}
		return appointment.PatientID == actor.UserID
	}
	return false
}

type UpdateAppointmentInput struct {
	Status       *string
	Notes        *string
	Prescription *string
	Diagnosis    *string
}

func (in UpdateAppointmentInput) touchesClinicalFields() bool {
	return in.Notes != nil || in.Prescription != nil || in.Diagnosis != nil
}

// UpdateAppointment applies a status transition and/or clinical field
// updates. Clinical fields are gated on role and doctor ownership only;
// status transitions additionally follow the transition policy. The bool
// reports whether the status actually moved, so a re-submitted status does
// not look like a fresh transition to callers.
func UpdateAppointment(db *gorm.DB, actor Actor, appointmentID uuid.UUID, in UpdateAppointmentInput) (*models.Appointment, bool, error) {
	var appointment models.Appointment
	if err := db.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, httperr.NotFound("Appointment not found")
		}
		return nil, false, err
	}

	actorDoctorID, err := doctorIDForUser(db, actor)
	if err != nil {
		return nil, false, err
	}

	if in.touchesClinicalFields() {
		if actor.Role != models.RoleDoctor && actor.Role != models.RoleAdmin {
			return nil, false, httperr.Forbidden("Only doctors can add prescriptions and notes")
		}
		if actor.Role == models.RoleDoctor && actorDoctorID != appointment.DoctorID {
			return nil, false, httperr.Forbidden("You can only add prescriptions to your own appointments")
		}
	}

	statusChanged := false
	if in.Status != nil && *in.Status != appointment.Status {
		target := *in.Status
		if !models.ValidStatus(target) {
			return nil, false, httperr.InvalidArgument("Invalid appointment status: " + target)
		}
		policy := DefaultTransitionPolicy()
		if !policy.Allowed(appointment.Status, target) {
			return nil, false, httperr.InvalidArgument("Appointment cannot move from " + appointment.Status + " to " + target)
		}
		if !policy.Authorized(target, actor, &appointment, actorDoctorID) {
			return nil, false, httperr.Forbidden("Not authorized to update this appointment")
		}
		appointment.Status = target
		statusChanged = true
	}

	if in.Notes != nil {
		appointment.Notes = in.Notes
	}
	if in.Prescription != nil {
		appointment.Prescription = in.Prescription
	}
	if in.Diagnosis != nil {
		appointment.Diagnosis = in.Diagnosis
	}

	if err := db.Save(&appointment).Error; err != nil {
		return nil, false, err
	}
	return &appointment, statusChanged, nil
}

// CancelAppointment is a soft delete: the row is retained with status
// cancelled, releasing its capacity claim.
func CancelAppointment(db *gorm.DB, actor Actor, appointmentID uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := db.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Appointment not found")
		}
		return nil, err
	}

	if appointment.PatientID != actor.UserID && actor.Role != models.RoleAdmin {
		return nil, httperr.Forbidden("Not authorized to cancel this appointment")
	}

	policy := DefaultTransitionPolicy()
	if !policy.Allowed(appointment.Status, models.StatusCancelled) {
		return nil, httperr.InvalidArgument("Appointment with status " + appointment.Status + " can no longer be cancelled")
	}

	appointment.Status = models.StatusCancelled
	if err := db.Save(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// doctorIDForUser resolves the doctor record owned by the acting user.
// Returns uuid.Nil when the actor has no doctor profile.
func doctorIDForUser(db *gorm.DB, actor Actor) (uuid.UUID, error) {
	if actor.Role != models.RoleDoctor {
		return uuid.Nil, nil
	}
	var doctor models.Doctor
	if err := db.Select("id").First(&doctor, "user_id = ?", actor.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return doctor.ID, nil
}
