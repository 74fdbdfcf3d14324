// Package csvcodec converts applicant records to and from comma-separated text.
//
// The codec is stateless apart from its options and knows nothing about
// where records are stored. Encoding always writes the fixed header
//
//	First Name,Date of Birth,Graduate,Email,Course
//
// and omits the record ID. Decoding locates columns by case-insensitive
// substring match against the file's header row (see [MatchHeader]) and
// mints a fresh ID for every data row, so a re-import never recovers the
// original IDs.
//
// # Dialects
//
// [DialectPlain] is the default: fields are joined and split on bare commas
// with no quoting, so values must not contain commas or line feeds.
// [DialectRFC4180] routes both directions through encoding/csv and quotes
// fields when needed. Header matching and value coercion are shared.
package csvcodec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Header is the column order written by the encoder.
var Header = []string{"First Name", "Date of Birth", "Graduate", "Email", "Course"}

// Dialect selects the field separation rules.
type Dialect string

const (
	DialectPlain   Dialect = "plain"
	DialectRFC4180 Dialect = "rfc4180"
)

// ErrTooLarge is returned by DecodeReader when the input exceeds the byte limit.
var ErrTooLarge = errors.New("file too large")

// ParseDialect converts a config value to a Dialect. Empty means plain.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(DialectPlain):
		return DialectPlain, nil
	case string(DialectRFC4180), "rfc-4180", "quoted":
		return DialectRFC4180, nil
	default:
		return "", fmt.Errorf("unknown csv dialect %q", s)
	}
}

// Codec encodes and decodes applicant CSV text.
type Codec struct {
	dialect  Dialect
	newID    func() string
	maxBytes int64
}

// Option configures a Codec.
type Option func(*Codec)

// WithDialect sets the field separation rules.
func WithDialect(d Dialect) Option {
	return func(c *Codec) { c.dialect = d }
}

// WithIDFunc replaces the ID generator used while decoding.
func WithIDFunc(fn func() string) Option {
	return func(c *Codec) { c.newID = fn }
}

// WithMaxBytes limits how much DecodeReader will read. Zero means no limit.
func WithMaxBytes(n int64) Option {
	return func(c *Codec) { c.maxBytes = n }
}

// New returns a codec using the plain dialect and random UUIDs unless
// overridden by opts.
func New(opts ...Option) *Codec {
	c := &Codec{
		dialect: DialectPlain,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}
