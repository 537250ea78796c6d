package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healthsync/api/handlers"
	"github.com/healthsync/api/middleware"
)

func DoctorRoutes(app *fiber.App) {
	doctors := app.Group("/api/doctors")

	// Static routes first so they are not captured by /:id.
	doctors.Get("", handlers.GetDoctors)
	doctors.Get("/availability/slots", handlers.GetDoctorAvailableSlots)

	doctors.Put("/availability/update", middleware.Protected(), middleware.DoctorRequired(), handlers.UpdateDoctorAvailability)
	doctors.Get("/upload-signature", middleware.Protected(), middleware.DoctorRequired(), handlers.GenerateUploadSignature)

	doctors.Get("/:id", handlers.GetDoctor)
	doctors.Post("", middleware.Protected(), middleware.AdminRequired(), handlers.CreateDoctor)
	doctors.Put("/:id", middleware.Protected(), middleware.RoleRequired("admin", "doctor"), handlers.UpdateDoctor)
	doctors.Delete("/:id", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteDoctor)
}
