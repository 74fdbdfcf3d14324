package core

import (
	"errors"
	"strings"
	"testing"
)

func TestApplicantForm_Validate(t *testing.T) {
	withCourses(t, testCourses...)

	tests := []struct {
		name       string
		mutate     func(*ApplicantForm)
		wantFields []string
	}{
		{name: "valid form", mutate: func(*ApplicantForm) {}},
		{name: "graduate false is fine", mutate: func(f *ApplicantForm) { f.Graduate = false }},
		{name: "two character name", mutate: func(f *ApplicantForm) { f.FirstName = "Al" }},
		{name: "US date", mutate: func(f *ApplicantForm) { f.DOB = "12/31/2001" }},
		{name: "one character name", mutate: func(f *ApplicantForm) { f.FirstName = "A" }, wantFields: []string{"firstName"}},
		{name: "empty name", mutate: func(f *ApplicantForm) { f.FirstName = "" }, wantFields: []string{"firstName"}},
		{name: "bad date", mutate: func(f *ApplicantForm) { f.DOB = "soon" }, wantFields: []string{"dob"}},
		{name: "empty date", mutate: func(f *ApplicantForm) { f.DOB = "" }, wantFields: []string{"dob"}},
		{name: "bad email", mutate: func(f *ApplicantForm) { f.Email = "alice@" }, wantFields: []string{"email"}},
		{name: "no course", mutate: func(f *ApplicantForm) { f.Course = "" }, wantFields: []string{"course"}},
		{name: "unregistered course", mutate: func(f *ApplicantForm) { f.Course = "astrology" }, wantFields: []string{"course"}},
		{
			name: "every field wrong",
			mutate: func(f *ApplicantForm) {
				*f = ApplicantForm{FirstName: "x", DOB: "x", Email: "x", Course: "x"}
			},
			wantFields: []string{"firstName", "dob", "email", "course"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := form.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}
			var got []string
			for _, ve := range verrs {
				got = append(got, ve.Field)
			}
			if strings.Join(got, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("failing fields = %v, want %v", got, tt.wantFields)
			}
		})
	}
}

func TestApplicantForm_Messages(t *testing.T) {
	withCourses(t, testCourses...)

	err := ApplicantForm{FirstName: "x", DOB: "x", Email: "x"}.Validate()

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() = %v, want ValidationErrors", err)
	}

	want := map[string]string{
		"firstName": "First name must be at least 2 characters",
		"dob":       "Please enter a valid date",
		"email":     "Please enter a valid email address",
		"course":    "Please select a course",
	}
	for field, msg := range want {
		if got := verrs.Message(field); got != msg {
			t.Errorf("Message(%q) = %q, want %q", field, got, msg)
		}
	}
	if got := verrs.Message("graduate"); got != "" {
		t.Errorf("Message(graduate) = %q, want empty", got)
	}
	if !strings.HasPrefix(err.Error(), "validation failed: ") {
		t.Errorf("Error() = %q, want validation failed prefix", err.Error())
	}
}

func TestApplicantForm_Applicant(t *testing.T) {
	form := ApplicantForm{FirstName: "Bo", DOB: "Jan 2, 2006", Email: "bo@example.com", Course: "arts"}

	got := form.Applicant("id-9")

	if got.ID != "id-9" || got.DOB != "2006-01-02" || got.FirstName != "Bo" {
		t.Errorf("Applicant() = %+v", got)
	}
}

func TestApplicantForm_Normalize(t *testing.T) {
	got := ApplicantForm{FirstName: " Al ", DOB: " 2000-01-01", Email: "a@b.co ", Course: " arts "}.Normalize()
	want := ApplicantForm{FirstName: "Al", DOB: "2000-01-01", Email: "a@b.co", Course: "arts"}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}
