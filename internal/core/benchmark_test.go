package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// Conversion Benchmarks
// ============================================================================

// BenchmarkToPgDate covers every accepted date layout.
func BenchmarkToPgDate(b *testing.B) {
	testCases := []string{
		"2024-01-15",   // ISO format
		"01/15/2024",   // US format
		"Jan 15, 2024", // Text month
		"20240115",     // Compact
		"1/5/24",       // 2-digit year
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ToPgDate(tc)
		}
	}
}

// BenchmarkNormalizeDate_ISO benchmarks the form's native input format.
func BenchmarkNormalizeDate_ISO(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NormalizeDate("1999-01-15")
	}
}

func BenchmarkToPgBool(b *testing.B) {
	testCases := []string{"true", "false", "yes", "no", "on", "", "  Y  "}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ToPgBool(tc)
		}
	}
}

// ============================================================================
// Validation Benchmarks
// ============================================================================

func BenchmarkApplicantForm_Validate(b *testing.B) {
	ClearCourses()
	RegisterCourse(Course{Key: "arts", Label: "Arts"})
	b.Cleanup(ClearCourses)

	valid := ApplicantForm{FirstName: "Alice", DOB: "1999-01-01", Email: "alice@example.com", Course: "arts"}
	invalid := ApplicantForm{FirstName: "A", DOB: "soon", Email: "nope"}

	b.Run("valid", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = valid.Validate()
		}
	})
	b.Run("invalid", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = invalid.Validate()
		}
	})
}

// BenchmarkMapError measures the worst case: no pattern matches.
func BenchmarkMapError(b *testing.B) {
	err := fmt.Errorf("wrapped: %w", context.Canceled)
	unknown := fmt.Errorf("something nobody expected")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MapError(err)
		MapError(unknown)
	}
}

// ============================================================================
// Import Benchmarks
// ============================================================================

func generateTestCSV(rows int) string {
	var sb strings.Builder
	sb.WriteString("First Name,Date of Birth,Graduate,Email,Course\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "Name%d,1999-01-%02d,Yes,user%d@example.com,arts\n", i, i%28+1, i)
	}
	return sb.String()
}

func BenchmarkImport(b *testing.B) {
	for _, rows := range []int{100, 1000} {
		data := generateTestCSV(rows)

		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			s := NewService(Options{})
			sid := s.StartSession()
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := s.Import(ctx, sid, strings.NewReader(data), ImportOptions{Mode: ImportReplace})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
