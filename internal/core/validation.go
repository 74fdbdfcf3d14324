package core

// validation.go checks applicant form input before it reaches a store.
//
// Rules are declared as validate tags on ApplicantForm and enforced with
// go-playground/validator. Two custom tags are registered:
//
//	date    the value parses with ToPgDate
//	course  the value is a key in the course catalogue
//
// Every failing field is reported at once so the form can show all problems
// in a single round trip. Imported CSV rows are never validated.

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/JonMunkholm/applicants/internal/applicant"
	"github.com/go-playground/validator/v10"
)

// ApplicantForm is the input of a single applicant submission.
type ApplicantForm struct {
	FirstName string `json:"firstName" validate:"min=2"`
	DOB       string `json:"dob" validate:"date"`
	Graduate  bool   `json:"graduate"`
	Email     string `json:"email" validate:"email"`
	Course    string `json:"course" validate:"required,course"`
}

// fieldMessages holds the user-facing message for each form field.
// Any failing rule on a field yields the same message.
var fieldMessages = map[string]string{
	"firstName": "First name must be at least 2 characters",
	"dob":       "Please enter a valid date",
	"email":     "Please enter a valid email address",
	"course":    "Please select a course",
}

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string `json:"field"`   // JSON name of the form field
	Value   string `json:"value"`   // The rejected value
	Message string `json:"message"` // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors lists every problem found in a form.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message for field, or "" if the field passed.
func (e ValidationErrors) Message(field string) string {
	for _, ve := range e {
		if ve.Field == field {
			return ve.Message
		}
	}
	return ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		return ToPgDate(fl.Field().String()).Valid
	})
	mustRegister(v, "course", func(fl validator.FieldLevel) bool {
		_, ok := LookupCourse(fl.Field().String())
		return ok
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Normalize trims surrounding whitespace from the text fields.
func (f ApplicantForm) Normalize() ApplicantForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.DOB = strings.TrimSpace(f.DOB)
	f.Email = strings.TrimSpace(f.Email)
	f.Course = strings.TrimSpace(f.Course)
	return f
}

// Validate checks the form and returns ValidationErrors listing every
// failing field, in declaration order.
func (f ApplicantForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate applicant form: %w", err)
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	seen := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		result = append(result, ValidationError{
			Field:   field,
			Value:   fmt.Sprint(fe.Value()),
			Message: fieldMessages[field],
		})
	}
	return result
}

// Applicant converts a validated form into a record with the given ID.
// The date of birth is stored as YYYY-MM-DD.
func (f ApplicantForm) Applicant(id string) applicant.Applicant {
	dob, ok := NormalizeDate(f.DOB)
	if !ok {
		dob = f.DOB
	}
	return applicant.Applicant{
		ID:        id,
		FirstName: f.FirstName,
		DOB:       dob,
		Graduate:  f.Graduate,
		Email:     f.Email,
		Course:    f.Course,
	}
}
