package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/healthsync/api/database"
	"github.com/healthsync/api/models"
)

type UpdateProfileRequest struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	Gender       *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth  *string  `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup   *string  `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	Address      *string  `json:"address"`
	ProfileImage *string  `json:"profile_image"`
}

func GetMe(c *fiber.Ctx) error {
	actor := currentActor(c)

	var user models.User
	if err := database.DB.Where("id = ?", actor.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

func UpdateProfile(c *fiber.Ctx) error {
	actor := currentActor(c)

	var user models.User
	if err := database.DB.Where("id = ?", actor.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err == nil {
			user.DateOfBirth = &dob
		}
	}
	if req.BloodGroup != nil {
		user.BloodGroup = req.BloodGroup
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

func GetUsers(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "count": len(users), "data": users})
}

type AdminUpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role" validate:"omitempty,oneof=patient doctor admin"`
	IsActive *bool   `json:"is_active"`
}

func UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", c.Params("id")).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	var req AdminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": user, "message": "User updated successfully"})
}

func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", c.Params("id")).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "User not found"})
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}
