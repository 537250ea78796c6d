package notifications

import "fmt"

type AppointmentMail struct {
	PatientName string
	DoctorName  string
	Date        string
	TimeSlot    string
	Symptoms    string
}

func PatientAppointmentConfirmation(m AppointmentMail) (string, string) {
	subject := "Your Appointment Request Has Been Received"
	body := fmt.Sprintf(
		"<h1>Appointment Received</h1>"+
			"<p>Hi %s,</p>"+
			"<p>Your appointment request with Dr. %s has been received and is pending confirmation.</p>"+
			"<p><b>Date:</b> %s<br><b>Time:</b> %s</p>"+
			"<p>You will receive another email once the doctor confirms your appointment.</p>",
		m.PatientName, m.DoctorName, m.Date, m.TimeSlot,
	)
	return subject, body
}

func DoctorAppointmentNotification(m AppointmentMail) (string, string) {
	subject := "New Appointment Request"
	body := fmt.Sprintf(
		"<h1>New Appointment</h1>"+
			"<p>Hi Dr. %s,</p>"+
			"<p>%s has requested an appointment.</p>"+
			"<p><b>Date:</b> %s<br><b>Time:</b> %s<br><b>Symptoms:</b> %s</p>"+
			"<p>Please log in to confirm or manage this appointment.</p>",
		m.DoctorName, m.PatientName, m.Date, m.TimeSlot, m.Symptoms,
	)
	return subject, body
}

func AppointmentStatusUpdate(m AppointmentMail, status string) (string, string) {
	subject := "Your Appointment Has Been " + status
	body := fmt.Sprintf(
		"<h1>Appointment %s</h1>"+
			"<p>Hi %s,</p>"+
			"<p>Your appointment with Dr. %s on %s at %s is now <b>%s</b>.</p>",
		status, m.PatientName, m.DoctorName, m.Date, m.TimeSlot, status,
	)
	return subject, body
}

func AppointmentReminder(m AppointmentMail) (string, string) {
	subject := "Reminder: Your Appointment Is Tomorrow"
	body := fmt.Sprintf(
		"<h1>Appointment Reminder</h1>"+
			"<p>Hi %s,</p>"+
			"<p>This is a friendly reminder of your appointment with Dr. %s tomorrow, %s at %s.</p>",
		m.PatientName, m.DoctorName, m.Date, m.TimeSlot,
	)
	return subject, body
}
