package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healthsync/api/handlers"
	"github.com/healthsync/api/middleware"
)

func AppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/api/appointments", middleware.Protected())
	appointments.Get("", handlers.GetAppointments)
	appointments.Get("/:id", handlers.GetAppointment)
	appointments.Post("", handlers.CreateAppointment)
	appointments.Put("/:id", handlers.UpdateAppointment)
	appointments.Delete("/:id", handlers.CancelAppointment)
}
