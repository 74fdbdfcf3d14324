// Package web serves the applicant pages and the JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/applicants/internal/config"
	"github.com/JonMunkholm/applicants/internal/core"
	mw "github.com/JonMunkholm/applicants/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var staticFiles embed.FS

const contentSecurityPolicy = "default-src 'self'; style-src 'self'; img-src 'self' data:; " +
	"form-action 'self'; frame-ancestors 'none'"

// Server is the HTTP front end of the applicant service.
type Server struct {
	service *core.Service
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server

	requests *rateLimiter
	imports  *rateLimiter
}

// NewServer builds the router for service using cfg.
func NewServer(service *core.Service, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	if cfg.Rate.Enabled {
		s.requests = newRateLimiter(cfg.Rate.RequestsPerMinute, time.Minute)
		s.imports = newRateLimiter(cfg.Rate.ImportLimit, time.Minute)
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(mw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(mw.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))
	s.router.Use(s.limit(s.requests))
}

func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	cookie := s.cfg.Session.CookieName

	s.router.Get("/", s.handleLogin)
	s.router.Post("/login", s.handleSignIn)
	s.router.Post("/logout", s.handleSignOut)

	s.router.Group(func(r chi.Router) {
		r.Use(mw.RequireSession(cookie, s.service, redirectToLogin))

		r.Get("/home", s.handleHome)
		r.Get("/form", s.handleForm)
		r.Post("/form", s.handleSubmitForm)
		r.Get("/view-data", s.handleViewData)
		r.With(s.limit(s.imports)).Post("/view-data/import", s.handleImportPage)
		r.Get("/view-data/export", s.handleExport)
		r.Post("/applicants/{id}/delete", s.handleDeletePage)
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Use(mw.RequireSession(cookie, s.service, s.denyAPI))

		r.Get("/applicants", s.handleListApplicants)
		r.Post("/applicants", s.handleCreateApplicant)
		r.Put("/applicants", s.handleReplaceApplicants)
		r.Delete("/applicants/{id}", s.handleDeleteApplicant)
		r.With(s.limit(s.imports)).Post("/import", s.handleImportAPI)
		r.Get("/import/status", s.handleImportStatus)
		r.Get("/export", s.handleExport)
		r.Get("/courses", s.handleListCourses)
	})
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.requests.stop()
	s.imports.stop()
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if enableCSP {
				h.Set("Content-Security-Policy", contentSecurityPolicy)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// limit applies rl, or nothing when rate limiting is off.
func (s *Server) limit(rl *rateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientKey(r.RemoteAddr)) {
				w.Header().Set("Retry-After", "60")
				s.respondError(w, r, errRateLimited, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) denyAPI(w http.ResponseWriter, r *http.Request) {
	s.respondError(w, r, core.ErrSessionNotFound, http.StatusUnauthorized)
}
