package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const defaultUITitle = "PFD部おすすめごはん"

type Server struct {
	router  *chi.Mux
	uc      UseCase
	uiTitle string
}

type Options func(*Server)

// WithUITitle overrides the page title of the embedded UI.
func WithUITitle(title string) Options {
	return func(s *Server) {
		s.uiTitle = title
	}
}

func New(uc UseCase, opts ...Options) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		uc:      uc,
		uiTitle: defaultUITitle,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := s.router
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/", s.handleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
		r.Get("/users", s.handleUsers)
		r.Get("/restaurants", s.handleRestaurants)
		r.Get("/recommend/user/{user}", s.handleRecommendForUser)
		r.Get("/recommend/restaurant/{restaurant}", s.handleRecommendSimilar)
		r.Post("/refresh", s.handleRefresh)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
