package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/usecase"
	"github.com/waqt-lab/sawtak/pkg/utils/errutil"
)

type Server struct {
	router      *chi.Mux
	uc          *usecase.UseCases
	repo        interfaces.Repository
	transcriber interfaces.Transcriber
	version     string
}

type Options func(*Server)

// WithTranscriber enables the voice endpoint. Without it,
// /api/process-voice answers 503.
func WithTranscriber(t interfaces.Transcriber) Options {
	return func(s *Server) {
		s.transcriber = t
	}
}

func WithVersion(version string) Options {
	return func(s *Server) {
		s.version = version
	}
}

func New(uc *usecase.UseCases, repo interfaces.Repository, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		uc:      uc,
		repo:    repo,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/process-text", s.handleProcessText)
		r.Post("/process-voice", s.handleProcessVoice)

		r.Get("/contacts", s.handleListContacts)
		r.Post("/contacts", s.handleCreateContact)
		r.Get("/reminders", s.handleListReminders)
		r.Get("/medications", s.handleListMedications)
		r.Get("/messages", s.handleListMessages)
		r.Get("/agenda", s.handleAgenda)
		r.Get("/history", s.handleHistory)
		r.Get("/health", s.handleHealth)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}
