package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("booking_status", validateBookingStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\+?[0-9][0-9 ]{7,14}$`)
	return re.MatchString(fl.Field().String())
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "PENDENTE" || value == "CONFIRMED" || value == "CANCELLED" || value == "FINISHED"
}
