// Package templates holds the HTML pages of the applicant UI.
//
// Pages are written as .templ files; the *_templ.go files next to them are
// produced by `templ generate` and must not be edited by hand.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate

import (
	"strconv"

	"github.com/JonMunkholm/applicants/internal/applicant"
	"github.com/JonMunkholm/applicants/internal/core"
	"github.com/a-h/templ"
)

// FormData is the state of the applicant form.
type FormData struct {
	Values  core.ApplicantForm
	Errors  core.ValidationErrors
	Courses []core.Course
}

// ViewData is the state of the applicant table page.
type ViewData struct {
	Applicants []applicant.Applicant
	Import     *core.ImportResult
	Alert      templ.Component
	ExportName string
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}

// cell marks absent values so a preview distinguishes them from empty ones.
func cell(v string, present bool) string {
	if !present {
		return "(missing)"
	}
	return v
}

func importedMessage(r *core.ImportResult) string {
	return "Imported " + pluralize(r.Decoded, "record", "records") +
		" (" + string(r.Mode) + "). " + pluralize(r.Total, "applicant", "applicants") + " in total."
}

func previewMessage(r *core.ImportResult) string {
	return "Preview: " + pluralize(r.Decoded, "record", "records") +
		" would be imported (" + string(r.Mode) + "). Nothing was changed."
}
