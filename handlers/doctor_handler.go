package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/healthsync/api/database"
	"github.com/healthsync/api/models"
	"github.com/healthsync/api/services"
	"gorm.io/gorm"
)

func GetDoctors(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Where("doctors.is_active = ?", true)

	if specialization := c.Query("specialization"); specialization != "" {
		query = query.Where("specialization = ?", specialization)
	}
	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("JOIN users ON users.id = doctors.user_id").
			Where("users.name ILIKE ? OR specialization ILIKE ?", pattern, pattern)
	}

	var doctors []models.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "count": len(doctors), "data": doctors})
}

func GetDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	err := database.DB.
		Preload("User").
		Preload("Availability").
		Preload("Availability.Slots", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc")
		}).
		First(&doctor, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Doctor not found"})
	}

	return c.JSON(fiber.Map{"success": true, "data": doctor})
}

type CreateDoctorRequest struct {
	UserID          string  `json:"user_id" validate:"required,uuid"`
	Specialization  string  `json:"specialization" validate:"required"`
	Department      string  `json:"department" validate:"required"`
	Qualification   string  `json:"qualification" validate:"required"`
	Experience      int     `json:"experience" validate:"min=0"`
	ConsultationFee float64 `json:"consultation_fee" validate:"min=0"`
	Bio             *string `json:"bio" validate:"omitempty,max=500"`
}

func CreateDoctor(c *fiber.Ctx) error {
	var req CreateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	userID, _ := uuid.Parse(req.UserID)

	var doctor models.Doctor
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return errors.New("user not found")
		}

		if user.Role != models.RoleDoctor {
			user.Role = models.RoleDoctor
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		doctor = models.Doctor{
			UserID:          userID,
			Specialization:  req.Specialization,
			Department:      req.Department,
			Qualification:   req.Qualification,
			Experience:      req.Experience,
			ConsultationFee: req.ConsultationFee,
			Bio:             req.Bio,
		}
		return tx.Create(&doctor).Error
	})
	if err != nil {
		if err.Error() == "user not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
		}
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": doctor})
}

type UpdateDoctorRequest struct {
	Specialization  *string  `json:"specialization"`
	Department      *string  `json:"department"`
	Qualification   *string  `json:"qualification"`
	Experience      *int     `json:"experience" validate:"omitempty,min=0"`
	ConsultationFee *float64 `json:"consultation_fee" validate:"omitempty,min=0"`
	Bio             *string  `json:"bio" validate:"omitempty,max=500"`
	IsActive        *bool    `json:"is_active"`
}

func UpdateDoctor(c *fiber.Ctx) error {
	actor := currentActor(c)

	var doctor models.Doctor
	if err := database.DB.First(&doctor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Doctor not found"})
	}

	if actor.Role == models.RoleDoctor && doctor.UserID != actor.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "You can only update your own profile"})
	}

	var req UpdateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if req.Specialization != nil {
		doctor.Specialization = *req.Specialization
	}
	if req.Department != nil {
		doctor.Department = *req.Department
	}
	if req.Qualification != nil {
		doctor.Qualification = *req.Qualification
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	if req.Bio != nil {
		doctor.Bio = req.Bio
	}
	if req.IsActive != nil && actor.Role == models.RoleAdmin {
		doctor.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&doctor).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": doctor})
}

func DeleteDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := database.DB.First(&doctor, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Doctor not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("availability_id IN (?)",
			tx.Model(&models.DoctorAvailability{}).Select("id").Where("doctor_id = ?", doctor.ID),
		).Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.DoctorAvailability{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&doctor).Error; err != nil {
			return err
		}
		// The user account stays; only doctor privileges are removed.
		return tx.Model(&models.User{}).Where("id = ?", doctor.UserID).
			Update("role", models.RolePatient).Error
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Doctor profile removed and user role updated to patient"})
}

type AvailabilitySlotRequest struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	IsBooked  bool   `json:"isBooked"`
}

type AvailabilityDayRequest struct {
	Day   string                    `json:"day" validate:"required"`
	Slots []AvailabilitySlotRequest `json:"slots" validate:"dive"`
}

type UpdateAvailabilityRequest struct {
	Availability []AvailabilityDayRequest `json:"availability" validate:"required,dive"`
}

// UpdateDoctorAvailability replaces the caller's entire weekly schedule.
func UpdateDoctorAvailability(c *fiber.Ctx) error {
	actor := currentActor(c)

	var doctor models.Doctor
	if err := database.DB.First(&doctor, "user_id = ?", actor.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Doctor profile not found"})
	}

	var req UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if err := validateAvailabilityDays(req.Availability); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("availability_id IN (?)",
			tx.Model(&models.DoctorAvailability{}).Select("id").Where("doctor_id = ?", doctor.ID),
		).Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&models.DoctorAvailability{}).Error; err != nil {
			return err
		}

		for _, day := range req.Availability {
			entry := models.DoctorAvailability{DoctorID: doctor.ID, Day: day.Day}
			for i, slot := range day.Slots {
				entry.Slots = append(entry.Slots, models.AvailabilitySlot{
					StartTime: slot.StartTime,
					EndTime:   slot.EndTime,
					IsBooked:  slot.IsBooked,
					Position:  i,
				})
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fail(c, err)
	}

	var updated models.Doctor
	err = database.DB.
		Preload("User").
		Preload("Availability").
		Preload("Availability.Slots", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc")
		}).
		First(&updated, "id = ?", doctor.ID).Error
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": updated, "message": "Availability updated successfully"})
}

// validateAvailabilityDays rejects unknown weekdays, repeated weekday
// entries, and malformed slot times before any rows are replaced.
func validateAvailabilityDays(days []AvailabilityDayRequest) error {
	seen := make(map[string]bool)
	for _, day := range days {
		if !models.IsWeekday(day.Day) {
			return errors.New("Invalid weekday: " + day.Day)
		}
		if seen[day.Day] {
			return errors.New("Duplicate availability entry for " + day.Day)
		}
		seen[day.Day] = true

		for _, slot := range day.Slots {
			if !models.ValidClockTime(slot.StartTime) || !models.ValidClockTime(slot.EndTime) {
				return errors.New("Slot times must use HH:MM format")
			}
		}
	}
	return nil
}

// GetDoctorAvailableSlots is the public availability resolver endpoint.
func GetDoctorAvailableSlots(c *fiber.Ctx) error {
	doctorIDParam := c.Query("doctorId")
	dateParam := c.Query("date")

	if doctorIDParam == "" || dateParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Doctor ID and date are required"})
	}

	doctorID, err := uuid.Parse(doctorIDParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid doctor ID"})
	}

	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date, expected YYYY-MM-DD"})
	}

	slots, scheduled, err := services.ResolveBookableSlots(database.DB, doctorID, date)
	if err != nil {
		return fail(c, err)
	}

	// The message only applies when the weekday has no schedule entry; a day
	// that is merely blocked or fully booked returns a bare empty list.
	if !scheduled {
		return c.JSON(fiber.Map{"success": true, "data": slots, "message": "Doctor not available on this day"})
	}
	return c.JSON(fiber.Map{"success": true, "data": slots})
}
