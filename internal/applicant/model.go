// Package applicant holds the applicant record types and the in-memory
// collection that owns them for the lifetime of a session.
//
// The package has no knowledge of CSV or HTTP. Codecs produce [Partial]
// records and callers decide how to merge them into a [Store].
package applicant

import "github.com/jackc/pgx/v5/pgtype"

// Applicant describes one person's admission data.
type Applicant struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	DOB       string `json:"dob"`
	Graduate  bool   `json:"graduate"`
	Email     string `json:"email"`
	Course    string `json:"course"`
}

// Partial is an applicant-shaped record where any data field may be absent.
//
// Absence is carried by Valid=false on the pgtype value, so a column that
// was missing from a source file is never confused with a column that was
// present but empty. ID is always set.
type Partial struct {
	ID        string      `json:"id"`
	FirstName pgtype.Text `json:"firstName"`
	DOB       pgtype.Text `json:"dob"`
	Graduate  pgtype.Bool `json:"graduate"`
	Email     pgtype.Text `json:"email"`
	Course    pgtype.Text `json:"course"`
}

// FieldCount is the number of data fields on an applicant.
const FieldCount = 5

// Present reports how many of the data fields are set.
func (p Partial) Present() int {
	n := 0
	for _, ok := range []bool{p.FirstName.Valid, p.DOB.Valid, p.Graduate.Valid, p.Email.Valid, p.Course.Valid} {
		if ok {
			n++
		}
	}
	return n
}

// Complete fills absent fields with their zero values.
func (p Partial) Complete() Applicant {
	a := Applicant{ID: p.ID}
	if p.FirstName.Valid {
		a.FirstName = p.FirstName.String
	}
	if p.DOB.Valid {
		a.DOB = p.DOB.String
	}
	if p.Graduate.Valid {
		a.Graduate = p.Graduate.Bool
	}
	if p.Email.Valid {
		a.Email = p.Email.String
	}
	if p.Course.Valid {
		a.Course = p.Course.String
	}
	return a
}
