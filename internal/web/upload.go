package web

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/applicants/internal/core"
)

const (
	// multipartOverhead is allowed on top of the file limit for form fields
	// and part headers. The codec enforces the file limit itself.
	multipartOverhead = 1 << 20

	multipartMemory = 8 << 20
)

// readUpload returns the CSV carried by r: the multipart "file" field for
// form posts, or the raw body for any other content type.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize+multipartOverhead)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if r.ContentLength == 0 {
			return nil, "", core.ErrNoFile
		}
		return r.Body, "", nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", core.ErrFileTooLarge
		}
		return nil, "", fmt.Errorf("%w: %v", errInvalidBody, err)
	}

	f, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, "", core.ErrNoFile
	}
	return f, hdr.Filename, nil
}

// importOptions reads mode and dryRun. Multipart posts carry them as form
// fields; for a raw body only the query string is consulted, since parsing
// a form would consume the CSV.
func importOptions(r *http.Request, fileName string) (core.ImportOptions, error) {
	values := r.URL.Query()
	if r.MultipartForm != nil {
		values = url.Values{}
		for k, v := range r.URL.Query() {
			values[k] = v
		}
		for k, v := range r.MultipartForm.Value {
			values[k] = append(v, values[k]...)
		}
	}

	mode, err := core.ParseImportMode(values.Get("mode"))
	if err != nil {
		return core.ImportOptions{}, fmt.Errorf("%w: %w", errBadRequest, err)
	}

	var dryRun bool
	if v := values.Get("dryRun"); v != "" {
		dryRun, err = strconv.ParseBool(v)
		if err != nil {
			return core.ImportOptions{}, fmt.Errorf("%w: dryRun %q", errBadRequest, v)
		}
	}

	return core.ImportOptions{Mode: mode, DryRun: dryRun, FileName: fileName}, nil
}

// runImport reads the upload and hands it to the service.
func (s *Server) runImport(w http.ResponseWriter, r *http.Request, sessionID string) (*core.ImportResult, error) {
	body, name, err := s.readUpload(w, r)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	opts, err := importOptions(r, name)
	if err != nil {
		return nil, err
	}

	return s.service.Import(WithRequestMetadata(r.Context(), r), sessionID, body, opts)
}

// handleExport streams the session's collection as a CSV attachment.
// Only failures before the headers are sent can reach the client.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	name := r.URL.Query().Get("filename")
	if name == "" {
		name = s.cfg.Export.Filename
	}

	err := s.service.Export(WithRequestMetadata(r.Context(), r), sid, w, name)
	if err == nil {
		return
	}
	if errors.Is(err, core.ErrSessionNotFound) {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	s.logError(r, "export interrupted", err)
}
