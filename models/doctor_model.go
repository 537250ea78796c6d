package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Doctor struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"not null;unique" json:"user_id"`

	Specialization  string  `gorm:"size:100;not null" json:"specialization"`
	Department      string  `gorm:"size:100;not null" json:"department"`
	Qualification   string  `gorm:"size:255;not null" json:"qualification"`
	Experience      int     `gorm:"not null;default:0" json:"experience"`
	ConsultationFee float64 `gorm:"type:numeric(10,2);not null;default:0.00" json:"consultation_fee"`
	Bio             *string `gorm:"size:500" json:"bio"`
	ProfileImage    *string `gorm:"size:255" json:"profile_image"`

	// Derived by the rating aggregator, never written by request handlers.
	Rating      float64 `gorm:"default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	Availability []DoctorAvailability `gorm:"foreignkey:DoctorID" json:"availability"`
	User         User                 `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
