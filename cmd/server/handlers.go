package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cours-de-latin/generrate"
	"github.com/cours-de-latin/generrate/internal/corpus"
)

const requestIDHeader = "X-Request-ID"

// ---- JSON request and response types ------------------------------------

type injectRequest struct {
	Sentence string `json:"sentence"`
	Source   string `json:"source"`
	Target   string `json:"target"`
}

type injectResponse struct {
	Sentence         string                `json:"sentence"`
	Correct          string                `json:"correct"`
	ErrorDescription string                `json:"error_description"`
	Error            *generrate.Descriptor `json:"error"`
}

type inflectResponse struct {
	Word string `json:"word"`
	From string `json:"from"`
	To   string `json:"to"`
	Form string `json:"form"`
	Tag  string `json:"tag"`
}

type tagSetsResponse struct {
	TagSets map[string]map[string]string `json:"tag_sets"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// withRequestID tags every request with an ID, taken from the client when
// it sends one, and logs the request once it is served.
func withRequestID(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// ---- handlers -----------------------------------------------------------

func handleInject(inj *generrate.Injector, metrics *corpus.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body injectRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Source == "" || body.Target == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with 'sentence', 'source' and 'target' fields")
			return
		}
		s, err := generrate.ParseSentence(body.Sentence, true)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		kind := generrate.ErrorKind(body.Source, body.Target)
		out, err := inj.Inject(s, body.Source, body.Target)
		if err != nil {
			if generrate.IsCannotCreate(err) {
				reason := generrate.FailureKind(err)
				metrics.Failed(kind, reason)
				writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Reason: reason})
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		metrics.Injected(kind)
		writeJSON(w, http.StatusOK, injectResponse{
			Sentence:         out.String(),
			Correct:          s.String(),
			ErrorDescription: out.ErrorDescription,
			Error:            out.Descriptor,
		})
	}
}

func handleInflect(inj *generrate.Injector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query()
		word, from, to := q.Get("word"), q.Get("from"), q.Get("to")
		if word == "" || from == "" || to == "" {
			writeError(w, http.StatusBadRequest, "missing 'word', 'from' or 'to' query parameter")
			return
		}
		in := inj.Inflector()
		if !in.HasRule(from, to) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no rule from %s to %s in %s", from, to, in.TagSet().Name))
			return
		}
		// The infinitive rule converts the verb after the marker.
		out, ok := in.Transform(generrate.NewWord(word, from), from, to)
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("no rule turns %q from %s into %s", word, from, to))
			return
		}
		writeJSON(w, http.StatusOK, inflectResponse{Word: word, From: from, To: to, Form: out.Token, Tag: out.Tag})
	}
}

func handleTagSets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, tagSetsResponse{TagSets: map[string]map[string]string{
			generrate.Penn.Name:  generrate.Penn.Tags(),
			generrate.CLAWS.Name: generrate.CLAWS.Tags(),
		}})
	}
}
