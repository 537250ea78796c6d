package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PatientID     uuid.UUID `gorm:"not null;index" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"not null;index" json:"doctor_id"`
	AppointmentID uuid.UUID `gorm:"not null;unique" json:"appointment_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	Patient User   `gorm:"foreignkey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor `gorm:"foreignkey:DoctorID" json:"doctor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
