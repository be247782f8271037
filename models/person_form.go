// Package models file: models/person_form.go
package models

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ------------------- guided person creation -------------------

// PersonForm is the validation contract for the guided "create person" flow.
// It is stricter than InsertPerson: first and last name are required, email
// and phone must match their formats when present, and at least one of the
// two must be supplied.
type PersonForm struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,na_phone"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
	VolunteerLevel string `json:"volunteerLevel" validate:"omitempty,oneof=new regular core"`
}

// Accepts 555-123-4567 and (555) 123-4567 style numbers.
var naPhonePattern = regexp.MustCompile(`^(\(\d{3}\)\s?|\d{3}-)\d{3}-\d{4}$`)

var formValidate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	// error keys must match the JSON field names so a UI can render each
	// message next to its input
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("na_phone", func(fl validator.FieldLevel) bool {
		return naPhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ApplyDefaults fills the declared default values for omitted fields.
func (f *PersonForm) ApplyDefaults() {
	if f.Status == "" {
		f.Status = "active"
	}
	if f.VolunteerLevel == "" {
		f.VolunteerLevel = "new"
	}
}

// Validate checks the form and returns a map of field name to message.
// An empty map means the form is valid. The email-or-phone rule surfaces on
// the email field.
func (f *PersonForm) Validate() map[string]string {
	f.ApplyDefaults()

	errs := map[string]string{}
	if err := formValidate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs[fe.Field()] = formErrorMessage(fe)
			}
		} else {
			errs["form"] = err.Error()
		}
	}

	if f.Email == "" && f.Phone == "" {
		if _, taken := errs["email"]; !taken {
			errs["email"] = "Either email or phone number is required"
		}
	}
	return errs
}

func formErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "firstName":
			return "First name is required"
		case "lastName":
			return "Last name is required"
		}
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "na_phone":
		return "Please enter a valid phone number"
	case "oneof":
		return "Invalid value"
	}
	return "Invalid value"
}
