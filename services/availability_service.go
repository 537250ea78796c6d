package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/healthsync/api/httperr"
	"github.com/healthsync/api/models"
	"gorm.io/gorm"
)

// MaxAppointmentsPerSlot caps active (pending + confirmed) appointments per
// doctor/date/slot combination.
const MaxAppointmentsPerSlot = 5

type BookableSlot struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	DisplayTime    string `json:"displayTime"`
	SpotsRemaining int    `json:"spotsRemaining"`
	IsAvailable    bool   `json:"isAvailable"`
}

// ResolveBookableSlots computes the bookable slots for a doctor on a calendar
// date: the weekday's stored slots, minus manually blocked ones, minus slots
// already at capacity. The time-of-day portion of date is ignored. The bool
// reports whether the doctor has a schedule entry for that weekday at all, so
// callers can tell "not working that day" apart from "working but fully
// booked"; neither is an error.
func ResolveBookableSlots(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]BookableSlot, bool, error) {
	var doctor models.Doctor
	err := db.
		Preload("Availability").
		Preload("Availability.Slots", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc")
		}).
		First(&doctor, "id = ?", doctorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, httperr.NotFound("Doctor not found")
		}
		return nil, false, err
	}

	dayAvailability, scheduled := scheduleForDay(doctor.Availability, date.Weekday().String())
	if !scheduled || len(dayAvailability.Slots) == 0 {
		return []BookableSlot{}, scheduled, nil
	}

	counts, err := slotBookingCounts(db, doctorID, date)
	if err != nil {
		return nil, true, err
	}

	return bookableSlots(dayAvailability.Slots, counts), true, nil
}

// scheduleForDay finds the availability entry matching the weekday name.
func scheduleForDay(entries []models.DoctorAvailability, day string) (*models.DoctorAvailability, bool) {
	for i := range entries {
		if entries[i].Day == day {
			return &entries[i], true
		}
	}
	return nil, false
}

// slotBookingCounts returns active appointment counts per time-slot label for
// the doctor over the calendar day containing date.
func slotBookingCounts(db *gorm.DB, doctorID uuid.UUID, date time.Time) (map[string]int, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var rows []struct {
		TimeSlot string
		Total    int
	}
	err := db.Model(&models.Appointment{}).
		Select("time_slot, count(*) as total").
		Where("doctor_id = ? AND appointment_date >= ? AND appointment_date < ? AND status IN ?",
			doctorID, dayStart, dayEnd, []string{models.StatusPending, models.StatusConfirmed}).
		Group("time_slot").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.TimeSlot] = row.Total
	}
	return counts, nil
}

// bookableSlots filters a day's slots against manual blocks and live booking
// counts, preserving the stored slot order.
func bookableSlots(slots []models.AvailabilitySlot, counts map[string]int) []BookableSlot {
	result := make([]BookableSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBooked {
			continue
		}
		label := slot.Label()
		remaining := MaxAppointmentsPerSlot - counts[label]
		if remaining <= 0 {
			continue
		}
		result = append(result, BookableSlot{
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			DisplayTime:    label,
			SpotsRemaining: remaining,
			IsAvailable:    true,
		})
	}
	return result
}
