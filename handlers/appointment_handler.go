package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/healthsync/api/database"
	"github.com/healthsync/api/models"
	"github.com/healthsync/api/notifications"
	"github.com/healthsync/api/services"
)

func GetAppointments(c *fiber.Ctx) error {
	actor := currentActor(c)

	query := database.DB.
		Preload("Patient").
		Preload("Doctor.User").
		Order("appointment_date desc")

	switch actor.Role {
	case models.RolePatient:
		query = query.Where("patient_id = ?", actor.UserID)
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := database.DB.Select("id").First(&doctor, "user_id = ?", actor.UserID).Error; err == nil {
			query = query.Where("doctor_id = ?", doctor.ID)
		}
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "count": len(appointments), "data": appointments})
}

func GetAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	err := database.DB.
		Preload("Patient").
		Preload("Doctor.User").
		First(&appointment, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Appointment not found"})
	}

	return c.JSON(fiber.Map{"success": true, "data": appointment})
}

type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctor_id" validate:"required,uuid"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	TimeSlot        string `json:"time_slot" validate:"required"`
	Symptoms        string `json:"symptoms" validate:"required"`
}

func CreateAppointment(c *fiber.Ctx) error {
	actor := currentActor(c)

	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	doctorID, _ := uuid.Parse(req.DoctorID)

	appointmentDate, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid appointment date"})
	}

	appointment, err := services.CreateAppointment(database.DB, actor.UserID, services.CreateAppointmentInput{
		DoctorID:        doctorID,
		AppointmentDate: appointmentDate,
		TimeSlot:        req.TimeSlot,
		Symptoms:        req.Symptoms,
	})
	if err != nil {
		return fail(c, err)
	}

	go notifyAppointmentCreated(appointment.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    appointment,
		"message": "Appointment created successfully.",
	})
}

type UpdateAppointmentRequest struct {
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	Prescription *string `json:"prescription"`
	Diagnosis    *string `json:"diagnosis"`
}

func UpdateAppointment(c *fiber.Ctx) error {
	actor := currentActor(c)

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid appointment ID"})
	}

	var req UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	appointment, statusChanged, err := services.UpdateAppointment(database.DB, actor, appointmentID, services.UpdateAppointmentInput{
		Status:       req.Status,
		Notes:        req.Notes,
		Prescription: req.Prescription,
		Diagnosis:    req.Diagnosis,
	})
	if err != nil {
		return fail(c, err)
	}

	if statusNotificationDue(statusChanged, appointment.Status) {
		go notifyAppointmentStatus(appointment.ID, appointment.Status)
	}

	return c.JSON(fiber.Map{"success": true, "data": appointment, "message": "Appointment updated successfully"})
}

func CancelAppointment(c *fiber.Ctx) error {
	actor := currentActor(c)

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid appointment ID"})
	}

	appointment, err := services.CancelAppointment(database.DB, actor, appointmentID)
	if err != nil {
		return fail(c, err)
	}

	go notifyAppointmentStatus(appointment.ID, models.StatusCancelled)

	return c.JSON(fiber.Map{"success": true, "message": "Appointment cancelled"})
}

// statusNotificationDue reports whether a patient email should go out after
// an update: only when the status actually moved, and only for the states a
// patient acts on. Re-submitting the current status stays silent.
func statusNotificationDue(statusChanged bool, status string) bool {
	if !statusChanged {
		return false
	}
	return status == models.StatusConfirmed || status == models.StatusCancelled
}

// parseAppointmentDate accepts a full RFC3339 timestamp or a bare date.
func parseAppointmentDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func notifyAppointmentCreated(appointmentID uuid.UUID) {
	mail, ok := appointmentMail(appointmentID)
	if !ok {
		return
	}

	subject, body := notifications.PatientAppointmentConfirmation(mail.data)
	notifications.SendEmail(mail.patientName, mail.patientEmail, subject, body)

	subject, body = notifications.DoctorAppointmentNotification(mail.data)
	notifications.SendEmail(mail.doctorName, mail.doctorEmail, subject, body)
}

func notifyAppointmentStatus(appointmentID uuid.UUID, status string) {
	mail, ok := appointmentMail(appointmentID)
	if !ok {
		return
	}

	subject, body := notifications.AppointmentStatusUpdate(mail.data, status)
	notifications.SendEmail(mail.patientName, mail.patientEmail, subject, body)
}

type appointmentMailParties struct {
	data         notifications.AppointmentMail
	patientName  string
	patientEmail string
	doctorName   string
	doctorEmail  string
}

func appointmentMail(appointmentID uuid.UUID) (appointmentMailParties, bool) {
	var appointment models.Appointment
	err := database.DB.
		Preload("Patient").
		Preload("Doctor.User").
		First(&appointment, "id = ?", appointmentID).Error
	if err != nil {
		return appointmentMailParties{}, false
	}

	return appointmentMailParties{
		data: notifications.AppointmentMail{
			PatientName: appointment.Patient.Name,
			DoctorName:  appointment.Doctor.User.Name,
			Date:        appointment.AppointmentDate.Format("Monday, January 2, 2006"),
			TimeSlot:    appointment.TimeSlot,
			Symptoms:    appointment.Symptoms,
		},
		patientName:  appointment.Patient.Name,
		patientEmail: appointment.Patient.Email,
		doctorName:   appointment.Doctor.User.Name,
		doctorEmail:  appointment.Doctor.User.Email,
	}, true
}
