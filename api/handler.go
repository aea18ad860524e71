// Package handler exposes the solver over HTTP: score a guess against a
// solution, or replay a game's history and get the next suggestion.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/solver"
)

// maxListed is the pool size up to which /suggest lists the candidates.
const maxListed = 10

var errNotInVocabulary = errors.New("not in word list")

type Handler struct {
	r      *chi.Mux
	solver *solver.Solver
}

func New(s *solver.Solver) *Handler {
	h := &Handler{r: chi.NewRouter(), solver: s}

	h.r.Use(chimw.RequestID)
	h.r.Use(chimw.Recoverer)
	h.r.Use(chimw.Timeout(30 * time.Second))
	h.r.Use(jsonContentType)
	h.r.Use(requestLogger)

	h.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	h.r.Post("/pattern", h.handlePattern)
	h.r.Post("/suggest", h.handleSuggest)

	h.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) { h.r.ServeHTTP(w, r) }

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type patternReq struct {
	Guess    string `json:"guess"`
	Solution string `json:"solution"`
}

type patternRes struct {
	Pattern string    `json:"pattern"`
	Code    hint.Code `json:"code"`
}

func (h *Handler) handlePattern(w http.ResponseWriter, r *http.Request) {
	var req patternReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	a := h.solver.Vocabulary().Alphabet
	guess, err := a.Token(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sol, err := a.Token(req.Solution)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := hint.Compute(guess, sol, a.Size())
	writeJSON(w, http.StatusOK, patternRes{Pattern: p.Letters(), Code: p.Code()})
}

type turnReq struct {
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

type suggestReq struct {
	History []turnReq `json:"history"`
}

type suggestRes struct {
	State      string   `json:"state"`
	Attempt    int      `json:"attempt"`
	Guess      string   `json:"guess,omitempty"`
	Entropy    float64  `json:"entropy,omitempty"`
	Remaining  int      `json:"remaining"`
	Candidates []string `json:"candidates,omitempty"`
}

func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	sess, err := h.replay(req.History)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v := h.solver.Vocabulary()
	res := suggestRes{
		State:     sess.State().String(),
		Attempt:   sess.Attempt(),
		Remaining: len(sess.Pool()),
	}
	if len(sess.Pool()) <= maxListed {
		for _, t := range sess.Pool() {
			res.Candidates = append(res.Candidates, t.Format(v.Alphabet))
		}
	}

	if sess.State() == solver.Playing {
		guess, err := sess.Next()
		if err != nil {
			log.Error().Err(err).Msg("choose guess")
			writeError(w, http.StatusInternalServerError, "suggest_failed")
			return
		}
		res.Guess = guess.Format(v.Alphabet)
		res.Entropy = solver.Entropy(guess, sess.Pool(), hint.NewScorer(v.Alphabet.Size()))
	}
	writeJSON(w, http.StatusOK, res)
}

// replay plays history into a fresh session. Guesses must come from the
// vocabulary, and nothing may follow a finishing turn.
func (h *Handler) replay(history []turnReq) (*solver.Session, error) {
	v := h.solver.Vocabulary()
	sess := h.solver.NewSession()
	for i, turn := range history {
		if sess.State() != solver.Playing {
			return nil, fmt.Errorf("turn %d: %w", i+1, solver.ErrSessionOver)
		}
		guess, err := v.Alphabet.Token(turn.Guess)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i+1, err)
		}
		if !v.Contains(guess) {
			return nil, fmt.Errorf("turn %d: %q: %w", i+1, turn.Guess, errNotInVocabulary)
		}
		p, err := hint.Parse(turn.Pattern)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i+1, err)
		}
		if err := sess.Use(guess); err != nil {
			return nil, err
		}
		if _, err := sess.Apply(p); err != nil {
			return nil, err
		}
	}
	return sess, nil
}
