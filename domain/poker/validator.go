package poker

import (
	"fmt"

	"poker-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateCommand checks the `validate` tags of any command struct and wraps
// failures in ErrInvalidInput so the REST layer maps them to a 400.
func ValidateCommand(cmd any) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	return nil
}
