package assistant

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"zyppr/models"
)

var validate = validator.New()

// ValidateResponse enforces the assistant output contract. A nil top-level
// Response bag is the cardinal violation: "required but absent" must fail
// here, never default silently. Semantically empty but structurally valid
// content passes through untouched.
func ValidateResponse(resp *models.AssistantResponse) error {
	return validate.Struct(resp)
}

// IsSchemaViolation reports whether err came from contract validation, as
// opposed to transport or JSON parse failures. The gateway uses this to add
// a clarifying question to the fallback.
func IsSchemaViolation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
