package csvcodec

import (
	"bytes"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Clean removes a leading UTF-8 byte order mark, which Windows tools add to
// exported files, and replaces invalid UTF-8 sequences with U+FFFD.
// Valid input without a BOM is returned unchanged.
func Clean(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data
	}
	return bytes.ToValidUTF8(data, []byte("\uFFFD"))
}
