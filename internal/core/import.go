package core

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/JonMunkholm/applicants/internal/applicant"
	"github.com/JonMunkholm/applicants/internal/logging"
)

// ImportTimeout is the maximum duration of a single import.
var ImportTimeout = 2 * time.Minute

// ImportMode selects how decoded records are merged into a session.
type ImportMode string

const (
	// ImportAppend adds every decoded record after the existing ones.
	ImportAppend ImportMode = "append"
	// ImportReplace discards the collection and installs the decoded records.
	ImportReplace ImportMode = "replace"
)

// ParseImportMode converts a request value to an ImportMode.
// The empty string means ImportAppend.
func ParseImportMode(s string) (ImportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ImportAppend):
		return ImportAppend, nil
	case string(ImportReplace):
		return ImportReplace, nil
	default:
		return "", fmt.Errorf("unknown import mode %q", s)
	}
}

// ImportOptions controls a single import.
type ImportOptions struct {
	Mode     ImportMode
	DryRun   bool
	FileName string // for logging only
}

// ImportResult summarizes an import.
type ImportResult struct {
	Mode     ImportMode          `json:"mode"`
	DryRun   bool                `json:"dryRun"`
	Decoded  int                 `json:"decoded"`
	Total    int                 `json:"total"`
	Records  []applicant.Partial `json:"records,omitempty"`
	Missing  []string            `json:"missing,omitempty"`
	Duration time.Duration       `json:"-"`
}

// Import decodes CSV from r and merges the records into the session.
//
// Absent fields take their zero values when merged. With DryRun the decoded
// partial records are returned in Records and the collection is not touched.
// Total is the size of the collection after the import. Missing names the
// fields the file's header had no column for.
func (s *Service) Import(ctx context.Context, sessionID string, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	if opts.Mode == "" {
		opts.Mode = ImportAppend
	}
	if opts.Mode != ImportAppend && opts.Mode != ImportReplace {
		return nil, fmt.Errorf("unknown import mode %q", opts.Mode)
	}

	st, err := s.store(sessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ImportTimeout)
	defer cancel()

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	defer s.limiter.Release()

	start := time.Now()
	log := logging.WithFields(ctx,
		"session_id", sessionID,
		"file", opts.FileName,
		"mode", opts.Mode,
		"dry_run", opts.DryRun,
	)
	if c := ClientFromContext(ctx); c.IPAddress != "" {
		log = log.With("ip", c.IPAddress)
	}

	decoded, err := s.codec.DecodeReader(r)
	if err != nil {
		log.Warn("import failed", "error", err)
		return nil, fmt.Errorf("import: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	partials := decoded.Records
	result := &ImportResult{
		Mode:    opts.Mode,
		DryRun:  opts.DryRun,
		Decoded: len(partials),
		Missing: decoded.Columns.Missing(),
	}

	if opts.DryRun {
		result.Records = partials
		result.Total = st.Len()
		result.Duration = time.Since(start)
		log.Info("import previewed", "decoded", result.Decoded, "missing", result.Missing)
		return result, nil
	}

	records := make([]applicant.Applicant, len(partials))
	for i, p := range partials {
		records[i] = p.Complete()
	}

	switch opts.Mode {
	case ImportReplace:
		st.ReplaceAll(records)
	default:
		for _, a := range records {
			st.Add(a)
		}
	}

	result.Total = st.Len()
	result.Duration = time.Since(start)
	log.Info("import completed",
		"decoded", result.Decoded,
		"total", result.Total,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}
