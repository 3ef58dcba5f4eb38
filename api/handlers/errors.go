// Package handlers provides HTTP handlers for the center-star alignment API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aria-lang/centerstar-go/internal/alignment"
	"github.com/aria-lang/centerstar-go/internal/msa"
	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OptionsRequest carries optional overrides of the server defaults.
type OptionsRequest struct {
	Type     string `json:"type,omitempty"`
	Match    *int   `json:"match,omitempty"`
	Mismatch *int   `json:"mismatch,omitempty"`
	Gap      *int   `json:"gap,omitempty"`
	TieBreak string `json:"tie_break,omitempty"`
}

func (o OptionsRequest) apply(defaults centerstar.Options) (centerstar.Options, error) {
	opts := defaults
	match, mismatch, gap := opts.Scoring.Match, opts.Scoring.Mismatch, opts.Scoring.Gap
	if o.Match != nil {
		match = *o.Match
	}
	if o.Mismatch != nil {
		mismatch = *o.Mismatch
	}
	if o.Gap != nil {
		gap = *o.Gap
	}

	scoring, err := alignment.NewScoring(match, mismatch, gap)
	if err != nil {
		return opts, badRequest(err)
	}
	opts.Scoring = scoring

	if o.TieBreak != "" {
		tb, err := alignment.ParseTieBreak(o.TieBreak)
		if err != nil {
			return opts, badRequest(err)
		}
		opts.TieBreak = tb
	}

	if o.Type != "" {
		alphabet, err := sequence.ParseAlphabet(o.Type)
		if err != nil {
			return opts, badRequest(err)
		}
		opts.Alphabet = alphabet
	}

	return opts, nil
}

// requestError marks a failure caused by the request content.
type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return &requestError{err: err}
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	var reqErr *requestError
	var seqErr sequence.SequenceError
	var msaErr msa.Error

	switch {
	case errors.As(err, &reqErr), errors.As(err, &seqErr), errors.As(err, &msaErr):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest(errors.New("invalid request body"))
	}
	return nil
}
