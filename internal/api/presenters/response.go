package presenters

import (
	"Pickup-Order-System/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StatusFor maps an error kind onto its HTTP status.
func StatusFor(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &validationErrors):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidState):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		res.Error = domain.ErrUnexpected.Error()
	}
	return c.Status(status).JSON(res)
}

// ServiceError renders err with the status its kind maps to.
func ServiceError(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusFor(err), message, err)
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}
