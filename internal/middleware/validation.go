package middleware

import (
	"interviewhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam validates the :id path parameter as a ULID under the
// given field name.
func (vm *ValidationMiddleware) ValidateIDParam(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateID(field, id); len(errs) > 0 {
			return errs // handled by the ErrorHandler middleware
		}
		c.Locals("validated_id", id)
		return c.Next()
	}
}
