package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request payload against its struct tags before it is
// sent over the wire, mirroring the server's binding rules so obviously
// malformed requests fail locally.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		f := errs[0]
		return fmt.Errorf("invalid request: field %s failed on %s", f.Field(), f.Tag())
	}
	return fmt.Errorf("invalid request: %w", err)
}
