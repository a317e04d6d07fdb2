package middleware

import (
	"vidquiz/internal/domain"
	"vidquiz/internal/dto"
	"vidquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedURLKey is the fiber.Ctx locals key holding the validated locator.
const ValidatedURLKey = "validated_url"

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

// ValidateGenerateQuiz parses the request body and checks its url field
func (vm *ValidationMiddleware) ValidateGenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerateQuizRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Request body must be a JSON object with a url field")
		}

		if errors := vm.validator.ValidateGenerateQuizRequest(req.URL); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedURLKey, req.URL)
		return c.Next()
	}
}
