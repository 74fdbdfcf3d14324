package csvcodec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/applicants/internal/applicant"
)

// Encode returns the CSV text for list: the header line followed by one
// line per applicant, joined by single line feeds with no trailing newline.
func (c *Codec) Encode(list []applicant.Applicant) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = c.EncodeTo(&b, list)
	return b.String()
}

// EncodeTo writes the CSV text for list to w.
func (c *Codec) EncodeTo(w io.Writer, list []applicant.Applicant) error {
	if c.dialect == DialectRFC4180 {
		return encodeQuoted(w, list)
	}

	lines := make([]string, 0, len(list)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, a := range list {
		lines = append(lines, strings.Join(row(a), ","))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func encodeQuoted(w io.Writer, list []applicant.Applicant) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range list {
		if err := cw.Write(row(a)); err != nil {
			return fmt.Errorf("write csv row %s: %w", a.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	// Match the plain dialect: no newline after the last record.
	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// row returns a's fields in Header order.
func row(a applicant.Applicant) []string {
	return []string{a.FirstName, a.DOB, FormatGraduate(a.Graduate), a.Email, a.Course}
}

// FormatGraduate renders the graduate flag as "Yes" or "No".
func FormatGraduate(graduate bool) string {
	if graduate {
		return "Yes"
	}
	return "No"
}
