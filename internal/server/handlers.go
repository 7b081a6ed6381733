package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/at-ishikawa/fancyword/internal/lexicon"
	"github.com/at-ishikawa/fancyword/internal/suggest"
)

type similarResponse struct {
	Word        string               `json:"word"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Labels      []string             `json:"labels"`
}

type definitionsResponse struct {
	Word        string               `json:"word"`
	Definitions []lexicon.Definition `json:"definitions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		s.respondError(w, http.StatusBadRequest, "word is required")
		return
	}
	topN := 0
	if raw := r.URL.Query().Get("topn"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > suggest.MaxTopN {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("topn must be an integer between 1 and %d", suggest.MaxTopN))
			return
		}
		topN = n
	}

	list, err := s.suggester.SuggestWord(r.Context(), word, topN)
	if errors.Is(err, suggest.ErrNoSuggestions) {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("can't find similar words for %s", word))
		return
	}
	if err != nil {
		slog.Default().Error("suggest failed", "word", word, "error", err)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, similarResponse{
		Word:        strings.ToLower(word),
		Suggestions: list.Suggestions,
		Labels:      list.Labels,
	})
}

func (s *Server) handleDefinitions(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		s.respondError(w, http.StatusBadRequest, "word is required")
		return
	}

	definitions, err := s.suggester.DefineWord(r.Context(), strings.ToLower(word))
	if err != nil {
		if !errors.Is(err, lexicon.ErrNoDefinition) {
			slog.Default().Error("define failed", "word", word, "error", err)
		}
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("can't find definition words for %s", word))
		return
	}
	s.respondJSON(w, http.StatusOK, definitionsResponse{
		Word:        strings.ToLower(word),
		Definitions: definitions,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"word2vec": s.word2vec.Status(),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to write response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}
