package jobs

import (
	"log"
	"time"

	"github.com/healthsync/api/database"
	"github.com/healthsync/api/models"
	"github.com/healthsync/api/notifications"
)

// SendAppointmentReminders emails patients and doctors about tomorrow's
// confirmed appointments. Scheduled once a day.
func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	now := time.Now()
	tomorrowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	tomorrowEnd := tomorrowStart.Add(24 * time.Hour)

	var upcoming []models.Appointment
	err := database.DB.
		Preload("Patient").
		Preload("Doctor.User").
		Where("status = ? AND appointment_date >= ? AND appointment_date < ?",
			models.StatusConfirmed, tomorrowStart, tomorrowEnd).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	if len(upcoming) == 0 {
		return
	}

	for _, appointment := range upcoming {
		log.Printf("Sending reminder for appointment ID: %s", appointment.ID)

		mail := notifications.AppointmentMail{
			PatientName: appointment.Patient.Name,
			DoctorName:  appointment.Doctor.User.Name,
			Date:        appointment.AppointmentDate.Format("Monday, January 2, 2006"),
			TimeSlot:    appointment.TimeSlot,
		}
		subject, body := notifications.AppointmentReminder(mail)

		go notifications.SendEmail(appointment.Patient.Name, appointment.Patient.Email, subject, body)
		go notifications.SendEmail(appointment.Doctor.User.Name, appointment.Doctor.User.Email, subject, body)
	}
}
