package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/healthsync/api/httperr"
	"github.com/healthsync/api/services"
)

var validate = validator.New()

// currentActor extracts the authenticated user from the JWT placed in locals
// by the auth middleware.
func currentActor(c *fiber.Ctx) services.Actor {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	role, _ := claims["role"].(string)
	return services.Actor{UserID: userID, Role: role}
}

// fail maps service errors to the response envelope. Typed errors keep their
// status; anything else is logged and reported as a server error.
func fail(c *fiber.Ctx, err error) error {
	var he *httperr.Error
	if errors.As(err, &he) {
		return c.Status(he.Status).JSON(fiber.Map{"success": false, "message": he.Message})
	}
	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Server Error"})
}
