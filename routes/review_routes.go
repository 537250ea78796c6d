package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healthsync/api/handlers"
	"github.com/healthsync/api/middleware"
)

func ReviewRoutes(app *fiber.App) {
	reviews := app.Group("/api/reviews")

	reviews.Get("", handlers.GetReviews)
	reviews.Get("/doctor/:doctorId", handlers.GetDoctorReviews)

	reviews.Post("", middleware.Protected(), handlers.CreateReview)
	reviews.Put("/:id", middleware.Protected(), handlers.UpdateReview)
	reviews.Delete("/:id", middleware.Protected(), handlers.DeleteReview)
}
