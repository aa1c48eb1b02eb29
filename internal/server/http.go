package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flint-gui/simple-tools-mcp/internal/tools"
)

// Router exposes the dispatcher over HTTP as an alternative to the stdio
// transport. Response shapes are identical to the stdio transport: the tool
// listing keeps its own shape, everything else is the uniform result.
// When token is non-empty, /mcp routes require a matching bearer token.
func (s *Server) Router(token string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/mcp", func(r chi.Router) {
		r.Use(bearerAuth(token))
		r.Get("/tools", s.handleHTTPListTools)
		r.Post("/call", s.handleHTTPCall)
	})

	return r
}

func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			if r.Header.Get("Authorization") != "Bearer "+token {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleHTTPListTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.dispatch(&Request{Method: "tools/list"}))
}

// handleHTTPCall accepts the tools/call params object as the request body
// and responds with the uniform result. Tool failures are still HTTP 200
// with isError set; clients branch on isError here just like on stdio.
func (s *Server) handleHTTPCall(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, tools.Errorf("Invalid JSON request"))
		return
	}
	if !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, tools.Errorf("Invalid JSON request"))
		return
	}
	resp := s.Handle(&Request{Method: "tools/call", Params: body})
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
