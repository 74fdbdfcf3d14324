package csvcodec

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JonMunkholm/applicants/internal/applicant"
)

// MediaType is the Content-Type of exported files.
const MediaType = "text/csv;charset=utf-8"

// DefaultFilename is used when the caller supplies no export name.
const DefaultFilename = "applicants"

// Filename returns the download name for an export called name.
// Path separators and quotes are replaced so the result is safe inside a
// Content-Disposition header; a trailing ".csv" is not doubled.
func Filename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".csv")
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', '\r', '\n':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = DefaultFilename
	}
	return name + ".csv"
}

// SetDownloadHeaders marks a response as a CSV attachment named Filename(name).
func SetDownloadHeaders(h http.Header, name string) {
	h.Set("Content-Type", MediaType)
	h.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, Filename(name)))
	h.Set("X-Content-Type-Options", "nosniff")
}

// Download writes list to w as a file attachment named Filename(name).
// Headers are sent before the body, so a write error can only be logged.
func (c *Codec) Download(w http.ResponseWriter, name string, list []applicant.Applicant) error {
	SetDownloadHeaders(w.Header(), name)
	return c.EncodeTo(w, list)
}
