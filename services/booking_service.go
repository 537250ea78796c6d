package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/healthsync/api/httperr"
	"github.com/healthsync/api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateAppointmentInput struct {
	DoctorID        uuid.UUID
	AppointmentDate time.Time
	TimeSlot        string
	Symptoms        string
}

// CreateAppointment books a pending appointment after re-validating slot
// capacity. The count and insert run in one transaction holding a row lock
// on the doctor, so concurrent bookings against the same doctor serialize
// and the sixth active appointment for a slot always fails.
func CreateAppointment(db *gorm.DB, patientID uuid.UUID, in CreateAppointmentInput) (*models.Appointment, error) {
	var appointment models.Appointment

	err := db.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&doctor, "id = ?", in.DoctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("Doctor not found")
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ? AND appointment_date = ? AND time_slot = ? AND status IN ?",
				in.DoctorID, in.AppointmentDate, in.TimeSlot,
				[]string{models.StatusPending, models.StatusConfirmed}).
			Count(&count).Error; err != nil {
			return err
		}
		if err := admitBooking(count); err != nil {
			return err
		}

		appointment = models.Appointment{
			PatientID:       patientID,
			DoctorID:        in.DoctorID,
			AppointmentDate: in.AppointmentDate,
			TimeSlot:        in.TimeSlot,
			Status:          models.StatusPending,
			Symptoms:        in.Symptoms,
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

// admitBooking decides whether one more appointment fits under the per-slot
// cap, given the number of active bookings already holding the slot.
func admitBooking(active int64) error {
	if active >= MaxAppointmentsPerSlot {
		return httperr.CapacityExceeded(MaxAppointmentsPerSlot)
	}
	return nil
}
