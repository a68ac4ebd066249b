package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10) → 422 dengan detail per field
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = append(fields[fieldErr.Field()], validationMessage(fieldErr))
	}
	return JsonValidationError(c, fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi."
	case "email":
		return "Format email tidak valid."
	case "min":
		return fe.Field() + " harus minimal " + fe.Param() + " karakter."
	case "max":
		return fe.Field() + " harus kurang dari " + fe.Param() + " karakter."
	case "uuid", "uuid4":
		return fe.Field() + " harus UUID yang valid."
	default:
		return "Format tidak valid."
	}
}
