package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DoctorAvailability is one weekday of a doctor's recurring schedule.
// A doctor has at most one entry per weekday.
type DoctorAvailability struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DoctorID uuid.UUID `gorm:"not null" json:"-"`
	Day      string    `gorm:"size:10;not null" json:"day"`

	Slots []AvailabilitySlot `gorm:"foreignkey:AvailabilityID;constraint:OnDelete:CASCADE" json:"slots"`
}

func (a *DoctorAvailability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AvailabilitySlot stores start/end structured as HH:MM strings; the
// "09:00 - 10:00" label used on appointments is produced only by Label.
// IsBooked is the doctor's manual block, independent of booking counts.
type AvailabilitySlot struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	AvailabilityID uuid.UUID `gorm:"not null" json:"-"`
	StartTime      string    `gorm:"size:5;not null" json:"startTime"`
	EndTime        string    `gorm:"size:5;not null" json:"endTime"`
	IsBooked       bool      `gorm:"default:false" json:"isBooked"`
	Position       int       `gorm:"not null;default:0" json:"-"`
}

func (s *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s AvailabilitySlot) Label() string {
	return s.StartTime + " - " + s.EndTime
}

// ValidClockTime reports whether v is a zero-padded 24h "HH:MM" string.
func ValidClockTime(v string) bool {
	if len(v) != 5 || v[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	hours := int(v[0]-'0')*10 + int(v[1]-'0')
	minutes := int(v[3]-'0')*10 + int(v[4]-'0')
	return hours < 24 && minutes < 60
}
