package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PatientID uuid.UUID `gorm:"not null;index" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"not null;index" json:"doctor_id"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	// TimeSlot holds the "<start> - <end>" label matched literally against
	// the resolver's display slots.
	TimeSlot string `gorm:"size:20;not null" json:"time_slot"`
	Status   string `gorm:"size:20;not null;default:'pending'" json:"status"`

	Symptoms     string  `gorm:"type:text;not null" json:"symptoms"`
	Notes        *string `gorm:"type:text" json:"notes"`
	Prescription *string `gorm:"type:text" json:"prescription"`
	Diagnosis    *string `gorm:"type:text" json:"diagnosis"`

	Patient User   `gorm:"foreignkey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor `gorm:"foreignkey:DoctorID" json:"doctor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// CountsAgainstCapacity reports whether the appointment occupies a spot in
// its slot: pending and confirmed do, completed and cancelled do not.
func (a *Appointment) CountsAgainstCapacity() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}
