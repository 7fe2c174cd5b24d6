// Package api exposes the reader-facing HTTP surface: question answering
// over the archive and a liveness probe.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/osservatorio/observer/core"
)

// Answerer produces grounded answers for reader questions.
type Answerer interface {
	Answer(ctx context.Context, question string) (*core.AnswerResult, error)
}

// Server handles HTTP requests.
type Server struct {
	answerer Answerer
	logger   *slog.Logger
}

// NewServer creates a Server. A nil logger falls back to slog.Default.
func NewServer(answerer Answerer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		answerer: answerer,
		logger:   logger.With("component", "api"),
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/ask", s.handleAsk)
	return r
}

type askRequest struct {
	Question string `json:"question"`
}

type askSource struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

type askResponse struct {
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Sources  []askSource `json:"sources"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required"})
		return
	}

	result, err := s.answerer.Answer(r.Context(), question)
	if err != nil {
		s.logger.Error("failed to answer question", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "answer generation failed"})
		return
	}

	resp := askResponse{
		Question: result.Question,
		Answer:   result.Answer,
		Sources:  make([]askSource, 0, len(result.Sources)),
	}
	for _, article := range result.Sources {
		resp.Sources = append(resp.Sources, askSource{
			Title:    article.Title,
			Slug:     article.Slug,
			Category: article.CategoryName(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
