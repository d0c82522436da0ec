package validator

import (
	"github.com/go-playground/validator/v10"
)

// RFC 5321 caps the full address at 254 usable characters.
func validateEmailLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= 254
}
