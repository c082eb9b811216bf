// error_utils.go
package utils

import (
	"errors"

	"mergington-activities/src/models"
	"mergington-activities/src/services/activities"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Detail: message,
	})
}

// StatusFor แปลง error ของ registry เป็น HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, activities.ErrActivityNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, activities.ErrValidationConflict):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler ใช้เป็น fiber.Config.ErrorHandler ให้ทุก error ตอบเป็น {detail}
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return HandleError(c, fe.Code, fe.Message)
	}
	return HandleError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
