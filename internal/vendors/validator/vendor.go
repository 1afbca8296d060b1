package validator

import (
	"errors"
	"fmt"

	"utsavam/pkg/logger"
	"utsavam/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

type VendorValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewVendorValidator(log *logger.Logger) *VendorValidator {
	return &VendorValidator{
		validate: validator.New(),
		log:      log,
	}
}

func (v *VendorValidator) Validate(vendor *model.Vendor) error {
	if err := v.validate.Struct(vendor); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: messageFor(err),
		})
	}

	return validationErrors
}

func messageFor(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "e164":
		return "must be a valid phone number"
	case "email":
		return "must be a valid email address"
	case "mongodb":
		return "must be a valid object id"
	default:
		return fmt.Sprintf("failed %s validation", err.Tag())
	}
}
