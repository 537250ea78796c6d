package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/healthsync/api/database"
	"github.com/healthsync/api/httperr"
	"github.com/healthsync/api/models"
	"github.com/healthsync/api/services"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"max=500"`
}

func CreateReview(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	appointmentID, _ := uuid.Parse(req.AppointmentID)

	var review models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
			return httperr.NotFound("Appointment not found")
		}
		if appointment.PatientID != actor.UserID {
			return httperr.Forbidden("You can only review your own appointments")
		}
		if appointment.Status != models.StatusCompleted {
			return httperr.InvalidArgument("You can only review completed appointments")
		}

		var existing models.Review
		if err := tx.Where("appointment_id = ?", appointmentID).First(&existing).Error; err == nil {
			return httperr.Conflict("You have already reviewed this appointment")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		review = models.Review{
			PatientID:     actor.UserID,
			DoctorID:      appointment.DoctorID,
			AppointmentID: appointmentID,
			Rating:        req.Rating,
			Comment:       req.Comment,
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return fail(c, err)
	}

	services.RefreshDoctorRating(database.DB, review.DoctorID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    review,
		"message": "Review submitted successfully",
	})
}

func GetReviews(c *fiber.Ctx) error {
	query := database.DB.Preload("Patient").Order("created_at desc")
	if doctorID := c.Query("doctorId"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "count": len(reviews), "data": reviews})
}

func GetDoctorReviews(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := database.DB.First(&doctor, "id = ?", c.Params("doctorId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Doctor not found"})
	}

	var reviews []models.Review
	err := database.DB.
		Preload("Patient").
		Where("doctor_id = ?", doctor.ID).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"count":         len(reviews),
		"averageRating": doctor.Rating,
		"totalReviews":  doctor.ReviewCount,
		"data":          reviews,
	})
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

func UpdateReview(c *fiber.Ctx) error {
	actor := currentActor(c)

	var review models.Review
	if err := database.DB.First(&review, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Review not found"})
	}

	if review.PatientID != actor.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "You can only update your own reviews"})
	}

	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := database.DB.Save(&review).Error; err != nil {
		return fail(c, err)
	}

	services.RefreshDoctorRating(database.DB, review.DoctorID)

	return c.JSON(fiber.Map{"success": true, "data": review, "message": "Review updated successfully"})
}

func DeleteReview(c *fiber.Ctx) error {
	actor := currentActor(c)

	var review models.Review
	if err := database.DB.First(&review, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Review not found"})
	}

	if review.PatientID != actor.UserID && actor.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "You can only delete your own reviews"})
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		return fail(c, err)
	}

	services.RefreshDoctorRating(database.DB, review.DoctorID)

	return c.JSON(fiber.Map{"success": true, "message": "Review deleted successfully"})
}
