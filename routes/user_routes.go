package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healthsync/api/handlers"
	"github.com/healthsync/api/middleware"
)

func UserRoutes(app *fiber.App) {
	users := app.Group("/api/users", middleware.Protected())
	users.Get("/me", handlers.GetMe)
	users.Put("/profile", handlers.UpdateProfile)

	admin := users.Group("", middleware.AdminRequired())
	admin.Get("", handlers.GetUsers)
	admin.Put("/:id", handlers.UpdateUser)
	admin.Delete("/:id", handlers.DeleteUser)
}
