package customvalidator

import (
	"time"

	"github.com/go-playground/validator/v10"

	"sales-request-system/pkg/constants"
)

// RegisterCustomValidations wires the domain-specific rules used by DTO tags.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("service_type", isServiceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("calendar_date", isCalendarDate); err != nil {
		return err
	}
	return nil
}

func isRequestStatus(fl validator.FieldLevel) bool {
	return constants.IsValidStatus(fl.Field().String())
}

func isServiceType(fl validator.FieldLevel) bool {
	return constants.IsValidServiceType(fl.Field().String())
}

// isCalendarDate accepts YYYY-MM-DD.
func isCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
