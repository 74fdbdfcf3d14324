package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/JonMunkholm/applicants/internal/core"
	"github.com/JonMunkholm/applicants/internal/logging"
	mw "github.com/JonMunkholm/applicants/internal/web/middleware"
	"github.com/JonMunkholm/applicants/internal/web/templates"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

func sessionID(r *http.Request) string {
	return mw.SessionID(r.Context())
}

// applicantID returns the unescaped {id} route parameter.
func applicantID(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
	}
}

func (s *Server) logError(r *http.Request, msg string, err error) {
	logging.FromContext(r.Context()).Error(msg, "path", r.URL.Path, "error", err)
}

// handleLogin shows the sign-in page, or sends a signed-in visitor home.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(s.cfg.Session.CookieName); err == nil {
		if _, ok := s.service.Session(c.Value); ok {
			http.Redirect(w, r, "/home", http.StatusSeeOther)
			return
		}
	}
	render(w, r, http.StatusOK, templates.Login(nil))
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	id := s.service.StartSession()

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	logging.ForSession(r.Context(), id).
		Info("session started", "name", r.PostFormValue("name"), "ip", r.RemoteAddr)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(s.cfg.Session.CookieName); err == nil {
		s.service.EndSession(c.Value)
		logging.ForSession(r.Context(), c.Value).Info("session ended")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Session.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.List(r.Context(), sessionID(r))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	render(w, r, http.StatusOK, templates.Home(len(list)))
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, templates.Form(templates.FormData{Courses: core.Courses()}))
}

// handleSubmitForm adds the posted applicant and moves on to the table, or
// re-renders the form with every field problem.
func (s *Server) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, errInvalidBody, http.StatusBadRequest)
		return
	}

	form := core.ApplicantForm{
		FirstName: r.PostFormValue("firstName"),
		DOB:       r.PostFormValue("dob"),
		Graduate:  core.ToPgBool(r.PostFormValue("graduate")).Bool,
		Email:     r.PostFormValue("email"),
		Course:    r.PostFormValue("course"),
	}

	_, err := s.service.Submit(WithRequestMetadata(r.Context(), r), sessionID(r), form)
	var verrs core.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		render(w, r, http.StatusUnprocessableEntity, templates.Form(templates.FormData{
			Values:  form,
			Errors:  verrs,
			Courses: core.Courses(),
		}))
	case err != nil:
		s.respondError(w, r, err, statusFor(err))
	default:
		http.Redirect(w, r, "/view-data", http.StatusSeeOther)
	}
}

func (s *Server) handleViewData(w http.ResponseWriter, r *http.Request) {
	s.renderApplicants(w, r, http.StatusOK, nil, nil)
}

// handleImportPage imports an uploaded file and shows the updated table
// with a summary, or with the error that stopped the import.
func (s *Server) handleImportPage(w http.ResponseWriter, r *http.Request) {
	result, err := s.runImport(w, r, sessionID(r))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusUnauthorized {
			s.respondError(w, r, err, status)
			return
		}
		s.logError(r, "import failed", err)
		msg := core.MapError(err)
		s.renderApplicants(w, r, status, nil, templates.ErrorAlert(msg.Message, msg.Action, msg.Code))
		return
	}
	s.renderApplicants(w, r, http.StatusOK, result, nil)
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Remove(r.Context(), sessionID(r), applicantID(r)); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	http.Redirect(w, r, "/view-data", http.StatusSeeOther)
}

func (s *Server) renderApplicants(w http.ResponseWriter, r *http.Request, status int, result *core.ImportResult, alert templ.Component) {
	list, err := s.service.List(r.Context(), sessionID(r))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	render(w, r, status, templates.Applicants(templates.ViewData{
		Applicants: list,
		Import:     result,
		Alert:      alert,
		ExportName: s.cfg.Export.Filename,
	}))
}
