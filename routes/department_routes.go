package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healthsync/api/handlers"
	"github.com/healthsync/api/middleware"
)

func DepartmentRoutes(app *fiber.App) {
	departments := app.Group("/api/departments")

	departments.Get("", handlers.GetDepartments)

	admin := departments.Group("", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateDepartment)
	admin.Put("/:id", handlers.UpdateDepartment)
	admin.Delete("/:id", handlers.DeleteDepartment)
}
