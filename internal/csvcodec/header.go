package csvcodec

import "strings"

// NotFound marks a target field with no matching header column.
const NotFound = -1

// Columns maps each target field to its source column position.
// A NotFound position means the field stays absent in decoded records.
type Columns struct {
	FirstName int
	DOB       int
	Graduate  int
	Email     int
	Course    int
}

// MatchHeader locates the target fields in a header row.
//
// Cells are trimmed and compared case-insensitively by substring; the first
// matching cell wins:
//
//	firstName  contains "first" and "name"
//	dob        contains "birth" or "dob"
//	graduate   contains "graduate"
//	email      contains "email"
//	course     contains "course"
func MatchHeader(header []string) Columns {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return Columns{
		FirstName: findColumn(cells, func(h string) bool {
			return strings.Contains(h, "first") && strings.Contains(h, "name")
		}),
		DOB: findColumn(cells, func(h string) bool {
			return strings.Contains(h, "birth") || strings.Contains(h, "dob")
		}),
		Graduate: findColumn(cells, containsFn("graduate")),
		Email:    findColumn(cells, containsFn("email")),
		Course:   findColumn(cells, containsFn("course")),
	}
}

// Missing returns the names of target fields without a column.
func (c Columns) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name string
		pos  int
	}{
		{"firstName", c.FirstName},
		{"dob", c.DOB},
		{"graduate", c.Graduate},
		{"email", c.Email},
		{"course", c.Course},
	} {
		if f.pos == NotFound {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func findColumn(cells []string, match func(string) bool) int {
	for i, h := range cells {
		if match(h) {
			return i
		}
	}
	return NotFound
}

func containsFn(sub string) func(string) bool {
	return func(h string) bool { return strings.Contains(h, sub) }
}
