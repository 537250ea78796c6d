package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'patient'" json:"role"`

	Phone        *string    `gorm:"size:20" json:"phone"`
	Gender       *string    `gorm:"size:10" json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	BloodGroup   *string    `gorm:"size:5" json:"blood_group"`
	Height       *float64   `json:"height"`
	Weight       *float64   `json:"weight"`
	Address      *string    `gorm:"size:255" json:"address"`
	ProfileImage *string    `gorm:"size:255" json:"profile_image"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
