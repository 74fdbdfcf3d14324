package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/JonMunkholm/applicants/internal/applicant"
	"github.com/JonMunkholm/applicants/internal/csvcodec"
	"github.com/JonMunkholm/applicants/internal/logging"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for an unknown, ended or expired session.
var ErrSessionNotFound = errors.New("session not found")

// ErrFileTooLarge is returned when an import exceeds the byte limit.
var ErrFileTooLarge = csvcodec.ErrTooLarge

// ErrNoFile is returned when an import request carries no file.
var ErrNoFile = errors.New("no file provided")

// Options configures a Service. Zero fields select defaults.
type Options struct {
	Codec   *csvcodec.Codec
	Limiter *ImportLimiter
	NewID   func() string
	Now     func() time.Time
}

// Service provides the business logic of the applicant service.
type Service struct {
	codec   *csvcodec.Codec
	limiter *ImportLimiter
	newID   func() string
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Session is one visitor's private applicant collection.
type Session struct {
	ID      string
	Store   *applicant.Store
	Created time.Time

	lastSeen time.Time // guarded by Service.mu
}

// NewService creates a new Service instance.
func NewService(opts Options) *Service {
	s := &Service{
		codec:    opts.Codec,
		limiter:  opts.Limiter,
		newID:    opts.NewID,
		now:      opts.Now,
		sessions: make(map[string]*Session),
	}
	if s.codec == nil {
		s.codec = csvcodec.New()
	}
	if s.limiter == nil {
		s.limiter = NewImportLimiter(DefaultMaxConcurrentImports, DefaultImportWait)
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Limiter returns the import limiter, for shutdown draining and status.
func (s *Service) Limiter() *ImportLimiter {
	return s.limiter
}

// StartSession creates a session with an empty collection and returns its ID.
func (s *Service) StartSession() string {
	now := s.now()
	sess := &Session{
		ID:       uuid.NewString(),
		Store:    applicant.NewStore(),
		Created:  now,
		lastSeen: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess.ID
}

// Session returns the session with the given ID and marks it as used.
func (s *Service) Session(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = s.now()
	}
	return sess, ok
}

// EndSession discards a session and its collection.
// Ending an unknown session is a no-op.
func (s *Service) EndSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Service) store(sessionID string) (*applicant.Store, error) {
	sess, ok := s.Session(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Store, nil
}

// List returns a copy of the session's collection in store order.
func (s *Service) List(ctx context.Context, sessionID string) ([]applicant.Applicant, error) {
	st, err := s.store(sessionID)
	if err != nil {
		return nil, err
	}
	return st.All(), nil
}

// Add appends a record to the session's collection as given.
func (s *Service) Add(ctx context.Context, sessionID string, a applicant.Applicant) error {
	st, err := s.store(sessionID)
	if err != nil {
		return err
	}
	st.Add(a)
	return nil
}

// ReplaceAll installs list as the session's collection.
func (s *Service) ReplaceAll(ctx context.Context, sessionID string, list []applicant.Applicant) error {
	st, err := s.store(sessionID)
	if err != nil {
		return err
	}
	st.ReplaceAll(list)

	logging.ForSession(ctx, sessionID).
		Info("applicants replaced", "count", len(list))
	return nil
}

// Remove deletes every record with the given ID from the session.
// Removing an ID that is not present is not an error.
func (s *Service) Remove(ctx context.Context, sessionID, id string) error {
	st, err := s.store(sessionID)
	if err != nil {
		return err
	}
	st.RemoveByID(id)
	return nil
}

// Submit validates a form, mints an ID and adds the resulting record.
// Validation failures are returned as ValidationErrors and leave the
// collection untouched.
func (s *Service) Submit(ctx context.Context, sessionID string, form ApplicantForm) (applicant.Applicant, error) {
	st, err := s.store(sessionID)
	if err != nil {
		return applicant.Applicant{}, err
	}

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return applicant.Applicant{}, err
	}

	a := form.Applicant(s.newID())
	st.Add(a)

	logging.ForSession(ctx, sessionID).
		Debug("applicant submitted", "applicant_id", a.ID, "course", a.Course)
	return a, nil
}

// Export sends the session's collection to w as a CSV attachment.
// A missing session is reported before any header is written.
func (s *Service) Export(ctx context.Context, sessionID string, w http.ResponseWriter, filename string) error {
	st, err := s.store(sessionID)
	if err != nil {
		return err
	}

	list := st.All()
	if err := s.codec.Download(w, filename, list); err != nil {
		return fmt.Errorf("export applicants: %w", err)
	}

	logging.ForSession(ctx, sessionID).
		Info("applicants exported", "count", len(list), "filename", csvcodec.Filename(filename))
	return nil
}
