// Package fake provides an httptest server that serves archive
// fixtures over HTTP, with injectable failures for retry tests.
package fake

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type Server struct {
	mux    *http.ServeMux
	server *httptest.Server

	log *slog.Logger

	mu       sync.Mutex
	failures map[string]int
}

func NewServer(t *testing.T, l *slog.Logger) *Server {
	t.Helper()

	mux := http.NewServeMux()

	return &Server{
		mux:      mux,
		server:   httptest.NewServer(mux),
		log:      l,
		failures: make(map[string]int),
	}
}

func (s *Server) Close() {
	s.server.Close()
}

// URL returns the absolute URL of a served path.
func (s *Server) URL(path string) string {
	return s.server.URL + path
}

// Serve registers an archive under the given path.
func (s *Server) Serve(path string, data []byte) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		s.log.Info("got fake request", "method", r.Method, "url", r.URL)

		if s.takeFailure(path) {
			http.Error(w, "fake server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/gzip")
		w.Write(data)
	})
}

// FailFirst makes the next n requests for path fail with a 500 status.
func (s *Server) FailFirst(path string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[path] = n
}

func (s *Server) takeFailure(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failures[path] > 0 {
		s.failures[path]--
		return true
	}
	return false
}
