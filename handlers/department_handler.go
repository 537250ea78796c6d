package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/healthsync/api/database"
	"github.com/healthsync/api/models"
)

func GetDepartments(c *fiber.Ctx) error {
	var departments []models.Department
	if err := database.DB.Where("is_active = ?", true).Order("name asc").Find(&departments).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "count": len(departments), "data": departments})
}

type DepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
}

func CreateDepartment(c *fiber.Ctx) error {
	var req DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	var count int64
	database.DB.Model(&models.Department{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Department already exists"})
	}

	department := models.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Icon != "" {
		department.Icon = req.Icon
	}

	if err := database.DB.Create(&department).Error; err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": department})
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
}

func UpdateDepartment(c *fiber.Ctx) error {
	var department models.Department
	if err := database.DB.First(&department, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Department not found"})
	}

	var req UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	if req.Icon != nil {
		department.Icon = *req.Icon
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&department).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": department})
}

func DeleteDepartment(c *fiber.Ctx) error {
	var department models.Department
	if err := database.DB.First(&department, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Department not found"})
	}

	if err := database.DB.Delete(&department).Error; err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Department deleted successfully"})
}
