package csvcodec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/applicants/internal/applicant"
	"github.com/jackc/pgx/v5/pgtype"
)

// Decode parses CSV text into partial applicant records, one per non-blank
// data line, in file order.
//
// Decoding is best effort and never fails: an empty input yields no records,
// and a row too short to reach a matched column leaves that field absent.
func (c *Codec) Decode(text string) []applicant.Partial {
	return c.decode(text).Records
}

// Decoded is a decoded file: its records and where each field was found.
type Decoded struct {
	Records []applicant.Partial
	Columns Columns
}

func (c *Codec) decode(text string) Decoded {
	header, rows := c.split(text)

	cols := MatchHeader(header)
	out := make([]applicant.Partial, 0, len(rows))
	for _, values := range rows {
		out = append(out, c.build(cols, values))
	}
	return Decoded{Records: out, Columns: cols}
}

// DecodeReader reads r to the end and decodes it.
// A leading UTF-8 byte order mark is dropped and invalid UTF-8 is replaced.
// If the codec has a byte limit and r exceeds it, ErrTooLarge is returned.
func (c *Codec) DecodeReader(r io.Reader) (Decoded, error) {
	if c.maxBytes > 0 {
		r = io.LimitReader(r, c.maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Decoded{}, fmt.Errorf("read csv: %w", err)
	}
	if c.maxBytes > 0 && int64(len(data)) > c.maxBytes {
		return Decoded{}, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, c.maxBytes)
	}

	return c.decode(string(Clean(data))), nil
}

// split returns the trimmed header cells and the trimmed values of every
// non-blank data row.
func (c *Codec) split(text string) ([]string, [][]string) {
	if c.dialect == DialectRFC4180 {
		return splitQuoted(text)
	}

	lines := strings.Split(text, "\n")
	header := splitLine(lines[0])

	var rows [][]string
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitLine(line))
	}
	return header, rows
}

func splitLine(line string) []string {
	values := strings.Split(line, ",")
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}

// splitQuoted parses text with encoding/csv. Parsing stops at the first
// malformed record; everything read before it is kept.
func splitQuoted(text string) ([]string, [][]string) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var header []string
	var rows [][]string
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		for i, v := range record {
			record[i] = strings.TrimSpace(v)
		}
		if header == nil {
			header = record
			continue
		}
		if isBlankRecord(record) {
			continue
		}
		rows = append(rows, record)
	}
	return header, rows
}

func isBlankRecord(record []string) bool {
	return len(record) == 1 && record[0] == ""
}

func (c *Codec) build(cols Columns, values []string) applicant.Partial {
	p := applicant.Partial{ID: c.newID()}

	p.FirstName = textAt(values, cols.FirstName)
	p.DOB = textAt(values, cols.DOB)
	p.Email = textAt(values, cols.Email)
	p.Course = textAt(values, cols.Course)

	if v := textAt(values, cols.Graduate); v.Valid {
		p.Graduate = pgtype.Bool{Bool: ParseGraduate(v.String), Valid: true}
	}
	return p
}

// textAt returns the value at pos, or an absent value when pos is NotFound
// or past the end of the row.
func textAt(values []string, pos int) pgtype.Text {
	if pos < 0 || pos >= len(values) {
		return pgtype.Text{}
	}
	return pgtype.Text{String: values[pos], Valid: true}
}

// ParseGraduate reports whether v is one of "yes", "true" or "1",
// ignoring case. Anything else, including the empty string, is false.
func ParseGraduate(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}
