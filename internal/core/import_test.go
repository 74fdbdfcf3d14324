package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/applicants/internal/applicant"
	"github.com/JonMunkholm/applicants/internal/csvcodec"
)

const importCSV = "First Name,Email,Course\nAlice,alice@example.com,arts\nBob,bob@example.com,business"

func seed(t *testing.T, svc *Service, sid string, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if err := svc.Add(context.Background(), sid, applicant.Applicant{ID: id, FirstName: id}); err != nil {
			t.Fatalf("seed Add failed: %v", err)
		}
	}
}

func TestImport_Append(t *testing.T) {
	svc, sid := newTestService(t)
	seed(t, svc, sid, "existing")

	result, err := svc.Import(context.Background(), sid, strings.NewReader(importCSV), ImportOptions{})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Mode != ImportAppend || result.Decoded != 2 || result.Total != 3 {
		t.Errorf("result = %+v, want append, 2 decoded, 3 total", result)
	}

	list, _ := svc.List(context.Background(), sid)
	names := []string{list[0].FirstName, list[1].FirstName, list[2].FirstName}
	if strings.Join(names, ",") != "existing,Alice,Bob" {
		t.Errorf("names = %v, want [existing Alice Bob]", names)
	}
	if list[1].DOB != "" || list[1].Graduate {
		t.Errorf("absent fields not zeroed: %+v", list[1])
	}
}

func TestImport_Replace(t *testing.T) {
	svc, sid := newTestService(t)
	seed(t, svc, sid, "old-1", "old-2", "old-3")

	result, err := svc.Import(context.Background(), sid, strings.NewReader(importCSV), ImportOptions{Mode: ImportReplace})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}

	list, _ := svc.List(context.Background(), sid)
	if len(list) != 2 || list[0].FirstName != "Alice" || list[1].FirstName != "Bob" {
		t.Errorf("collection = %+v, want [Alice Bob]", list)
	}
}

func TestImport_DryRunLeavesStoreUntouched(t *testing.T) {
	svc, sid := newTestService(t)
	seed(t, svc, sid, "existing")

	result, err := svc.Import(context.Background(), sid, strings.NewReader(importCSV),
		ImportOptions{Mode: ImportReplace, DryRun: true})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if len(result.Records) != 2 {
		t.Fatalf("Records = %d, want 2", len(result.Records))
	}
	if result.Records[0].DOB.Valid {
		t.Error("dry run record reports DOB present, want absent")
	}
	if got := strings.Join(result.Missing, ","); got != "dob,graduate" {
		t.Errorf("Missing = %q, want dob,graduate", got)
	}
	if result.Total != 1 {
		t.Errorf("Total = %d, want 1", result.Total)
	}

	list, _ := svc.List(context.Background(), sid)
	if len(list) != 1 || list[0].ID != "existing" {
		t.Errorf("collection changed by dry run: %+v", list)
	}
}

func TestImport_EmptyFileReplacesWithNothing(t *testing.T) {
	svc, sid := newTestService(t)
	seed(t, svc, sid, "a", "b")

	result, err := svc.Import(context.Background(), sid, strings.NewReader(""), ImportOptions{Mode: ImportReplace})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Decoded != 0 || result.Total != 0 {
		t.Errorf("result = %+v, want 0 decoded, 0 total", result)
	}
}

func TestImport_TooLarge(t *testing.T) {
	withCourses(t, testCourses...)
	svc := NewService(Options{Codec: csvcodec.New(csvcodec.WithMaxBytes(10))})
	sid := svc.StartSession()

	_, err := svc.Import(context.Background(), sid, strings.NewReader(importCSV), ImportOptions{})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
	if got := MapError(err).Code; got != "FILE001" {
		t.Errorf("MapError code = %q, want FILE001", got)
	}

	list, _ := svc.List(context.Background(), sid)
	if len(list) != 0 {
		t.Errorf("collection has %d records after rejected import", len(list))
	}
}

func TestImport_Busy(t *testing.T) {
	limiter := NewImportLimiter(1, 20*time.Millisecond)
	svc := NewService(Options{Limiter: limiter})
	sid := svc.StartSession()

	if err := limiter.Acquire(context.Background()); err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer limiter.Release()

	_, err := svc.Import(context.Background(), sid, strings.NewReader(importCSV), ImportOptions{})
	if !errors.Is(err, ErrTooManyImports) {
		t.Errorf("err = %v, want ErrTooManyImports", err)
	}
}

func TestImport_Errors(t *testing.T) {
	svc, sid := newTestService(t)

	if _, err := svc.Import(context.Background(), "nope", strings.NewReader(importCSV), ImportOptions{}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("unknown session err = %v, want ErrSessionNotFound", err)
	}

	_, err := svc.Import(context.Background(), sid, strings.NewReader(importCSV), ImportOptions{Mode: "merge"})
	if err == nil || MapError(err).Code != "IMP002" {
		t.Errorf("unknown mode err = %v, want IMP002", err)
	}
}

func TestParseImportMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ImportMode
		wantErr bool
	}{
		{in: "", want: ImportAppend},
		{in: "append", want: ImportAppend},
		{in: "REPLACE", want: ImportReplace},
		{in: "merge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseImportMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseImportMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseImportMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
