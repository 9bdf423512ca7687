package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"leadtrack/models"
)

// PhoneFormatMessage is the user-facing error for a malformed contact number.
const PhoneFormatMessage = "Contact number must be 09 followed by 10 digits (e.g., 09918121869)"

var (
	// PH mobile format: 09 followed by exactly 10 digits.
	phoneRegex = regexp.MustCompile(`^09\d{10}$`)
	// Permissive local@domain.tld shape, deliberately nothing stricter.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("phone_ph", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("company_status", func(fl validator.FieldLevel) bool {
		return models.IsValidCompanyStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("call_status", func(fl validator.FieldLevel) bool {
		return models.IsValidCallStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("prospect_status", func(fl validator.FieldLevel) bool {
		return models.IsValidProspectStatus(fl.Field().String())
	})

	return v
}

// ValidateStruct checks s and returns the first violation as a user-facing
// error. Missing-field violations are reported before format violations, in
// field declaration order, so an incomplete submission always names the
// missing field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, fe := range verrs {
		if fe.Tag() == "notblank" || fe.Tag() == "required" {
			return fmt.Errorf("%s is required", fieldLabel(s, fe.StructField()))
		}
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "phone_ph":
		return errors.New(PhoneFormatMessage)
	case "email_shape":
		return errors.New("Invalid email address")
	case "company_status":
		return errors.New("Invalid status")
	case "call_status":
		return errors.New("Invalid call status")
	case "prospect_status":
		return errors.New("Invalid prospect status")
	}
	return fmt.Errorf("%s is invalid", fieldLabel(s, fe.StructField()))
}

// fieldLabel resolves the human-readable name of a struct field from its
// `label` tag, falling back to the json name.
func fieldLabel(s interface{}, fieldName string) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(fieldName); ok {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		if jsonTag := f.Tag.Get("json"); jsonTag != "" {
			return strings.Split(jsonTag, ",")[0]
		}
	}
	return fieldName
}
