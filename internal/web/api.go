package web

import (
	"net/http"

	"github.com/JonMunkholm/applicants/internal/applicant"
	"github.com/JonMunkholm/applicants/internal/core"
	"github.com/google/uuid"
)

// maxJSONBody bounds API request bodies other than imports.
const maxJSONBody = 1 << 20

func (s *Server) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.List(r.Context(), sessionID(r))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	if list == nil {
		list = []applicant.Applicant{}
	}
	writeJSON(w, r, http.StatusOK, list)
}

func (s *Server) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	var form core.ApplicantForm
	if err := decodeJSON(w, r, maxJSONBody, &form); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	a, err := s.service.Submit(WithRequestMetadata(r.Context(), r), sessionID(r), form)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, r, http.StatusCreated, a)
}

// handleReplaceApplicants installs the posted array as the collection.
// Records are stored as given; blank IDs are filled in.
func (s *Server) handleReplaceApplicants(w http.ResponseWriter, r *http.Request) {
	var list []applicant.Applicant
	if err := decodeJSON(w, r, maxJSONBody, &list); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.NewString()
		}
	}

	if err := s.service.ReplaceAll(WithRequestMetadata(r.Context(), r), sessionID(r), list); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]int{"total": len(list)})
}

func (s *Server) handleDeleteApplicant(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Remove(r.Context(), sessionID(r), applicantID(r)); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImportAPI(w http.ResponseWriter, r *http.Request) {
	result, err := s.runImport(w, r, sessionID(r))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleImportStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.service.Limiter().Status())
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, core.Courses())
}
