package core

import (
	"testing"
	"time"
)

func TestToPgDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{name: "ISO format", input: "2024-01-15", wantValid: true, wantYear: 2024, wantMonth: time.January, wantDay: 15},
		{name: "ISO leap day", input: "2024-02-29", wantValid: true, wantYear: 2024, wantMonth: time.February, wantDay: 29},
		{name: "US format with slashes", input: "01/15/2024", wantValid: true, wantYear: 2024, wantMonth: time.January, wantDay: 15},
		{name: "US single digit month/day", input: "1/5/2024", wantValid: true, wantYear: 2024, wantMonth: time.January, wantDay: 5},
		{name: "slash ISO", input: "2024/03/07", wantValid: true, wantYear: 2024, wantMonth: time.March, wantDay: 7},
		{name: "month name", input: "Jan 15, 2024", wantValid: true, wantYear: 2024, wantMonth: time.January, wantDay: 15},
		{name: "long month name", input: "March 3, 1999", wantValid: true, wantYear: 1999, wantMonth: time.March, wantDay: 3},
		{name: "compact", input: "19991231", wantValid: true, wantYear: 1999, wantMonth: time.December, wantDay: 31},
		{name: "RFC3339 timestamp", input: "2001-02-03T04:05:06Z", wantValid: true, wantYear: 2001, wantMonth: time.February, wantDay: 3},
		{name: "surrounding whitespace", input: "  2024-01-15 ", wantValid: true, wantYear: 2024, wantMonth: time.January, wantDay: 15},

		{name: "empty", input: "", wantValid: false},
		{name: "whitespace only", input: "   ", wantValid: false},
		{name: "not a date", input: "yesterday", wantValid: false},
		{name: "invalid day", input: "2023-02-29", wantValid: false},
		{name: "invalid month", input: "2024-13-01", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToPgDate(tt.input)

			if result.Valid != tt.wantValid {
				t.Fatalf("ToPgDate(%q).Valid = %v, want %v", tt.input, result.Valid, tt.wantValid)
			}
			if !tt.wantValid {
				return
			}
			if result.Time.Year() != tt.wantYear {
				t.Errorf("ToPgDate(%q).Year = %d, want %d", tt.input, result.Time.Year(), tt.wantYear)
			}
			if result.Time.Month() != tt.wantMonth {
				t.Errorf("ToPgDate(%q).Month = %v, want %v", tt.input, result.Time.Month(), tt.wantMonth)
			}
			if result.Time.Day() != tt.wantDay {
				t.Errorf("ToPgDate(%q).Day = %d, want %d", tt.input, result.Time.Day(), tt.wantDay)
			}
		})
	}
}

func TestToPgDate_TwoDigitYear(t *testing.T) {
	originalPivot := TwoDigitYearPivot
	defer func() { TwoDigitYearPivot = originalPivot }()

	TwoDigitYearPivot = 20

	tests := []struct {
		input    string
		wantYear int
	}{
		{input: "01/15/25", wantYear: 2025},
		{input: "01/15/99", wantYear: 1999},
		{input: "01/15/85", wantYear: 1985},
		{input: "1-15-99", wantYear: 1999},
		{input: "01.15.99", wantYear: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToPgDate(tt.input)
			if !result.Valid {
				t.Fatalf("ToPgDate(%q) invalid", tt.input)
			}
			if result.Time.Year() != tt.wantYear {
				t.Errorf("ToPgDate(%q).Year = %d, want %d", tt.input, result.Time.Year(), tt.wantYear)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "1999-01-01", want: "1999-01-01", wantOK: true},
		{input: "12/31/2001", want: "2001-12-31", wantOK: true},
		{input: "Jan 2, 2006", want: "2006-01-02", wantOK: true},
		{input: "", wantOK: false},
		{input: "31/31/2001", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToPgBool(t *testing.T) {
	tests := []struct {
		input     string
		wantValid bool
		wantBool  bool
	}{
		{input: "true", wantValid: true, wantBool: true},
		{input: "TRUE", wantValid: true, wantBool: true},
		{input: "yes", wantValid: true, wantBool: true},
		{input: "Y", wantValid: true, wantBool: true},
		{input: "1", wantValid: true, wantBool: true},
		{input: "on", wantValid: true, wantBool: true},
		{input: "false", wantValid: true, wantBool: false},
		{input: "No", wantValid: true, wantBool: false},
		{input: "0", wantValid: true, wantBool: false},
		{input: "off", wantValid: true, wantBool: false},
		{input: "", wantValid: false},
		{input: "maybe", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToPgBool(tt.input)
			if result.Valid != tt.wantValid {
				t.Fatalf("ToPgBool(%q).Valid = %v, want %v", tt.input, result.Valid, tt.wantValid)
			}
			if result.Bool != tt.wantBool {
				t.Errorf("ToPgBool(%q).Bool = %v, want %v", tt.input, result.Bool, tt.wantBool)
			}
		})
	}
}
