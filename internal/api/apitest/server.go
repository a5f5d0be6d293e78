// Package apitest provides an in-memory stand-in for the events listing API.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"pg360/internal/model"

	"github.com/go-chi/chi/v5"
)

// Request is a recorded call against the fake API.
type Request struct {
	Method        string
	Path          string
	Body          []byte
	CorrelationID string
}

// Failure forces a route to answer with the given status and raw body.
type Failure struct {
	Status int
	Body   string
}

// Server is a fake API backed by httptest.Server.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	requests   []Request
	failures   map[string]Failure
	categories []model.Category
	places     []model.Place
	events     []model.Event
}

// NewServer starts a fake API seeded with the given lists.
func NewServer(categories []model.Category, places []model.Place, events []model.Event) *Server {
	s := &Server{
		failures:   make(map[string]Failure),
		categories: categories,
		places:     places,
		events:     events,
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Get("/categorias", s.list(func() any { return s.categories }))
	r.Get("/locais", s.list(func() any { return s.places }))
	r.Get("/eventos", s.list(func() any { return s.events }))
	r.Post("/categorias", s.create)
	r.Post("/locais", s.create)
	r.Post("/eventos", s.create)

	s.Server = httptest.NewServer(r)
	return s
}

// Fail makes "METHOD /path" answer with the failure from now on.
func (s *Server) Fail(method, path string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = f
}

// Requests returns a copy of every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Posts returns the recorded POST requests for a path.
func (s *Server) Posts(path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == http.MethodPost && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Body:          body,
			CorrelationID: r.Header.Get("X-Correlation-ID"),
		})
		f, failing := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if failing {
			w.WriteHeader(f.Status)
			_, _ = io.WriteString(w, f.Body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(items func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		v := items()
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, v)
	}
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
