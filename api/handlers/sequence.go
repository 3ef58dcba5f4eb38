package handlers

import (
	"errors"
	"net/http"

	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/aria-lang/centerstar-go/internal/stats"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// SequencesRequest represents a request with bare sequences.
type SequencesRequest struct {
	Sequences []string `json:"sequences"`
	Type      string   `json:"type,omitempty"`
}

// DetectResponse represents the response for alphabet detection.
type DetectResponse struct {
	SequenceType string   `json:"sequence_type,omitempty"`
	Candidates   []string `json:"candidates,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// DetectHandler handles alphabet detection requests. An ambiguous result
// lists every fitting alphabet.
func DetectHandler(w http.ResponseWriter, r *http.Request) {
	var req SequencesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Sequences) == 0 {
		writeError(w, badRequest(errors.New("no sequences given")))
		return
	}

	alphabet, err := centerstar.DetectAlphabet(req.Sequences)
	if err != nil {
		var amb *sequence.AmbiguousAlphabetError
		if errors.As(err, &amb) {
			resp := DetectResponse{Error: err.Error()}
			for _, a := range amb.Candidates {
				resp.Candidates = append(resp.Candidates, a.String())
			}
			writeJSON(w, http.StatusBadRequest, resp)
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DetectResponse{SequenceType: alphabet.String()})
}

// ValidateResponse represents the response for validation.
type ValidateResponse struct {
	Valid        bool   `json:"valid"`
	SequenceType string `json:"sequence_type,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ValidateHandler handles sequence validation requests. Sequences are
// checked against the given type, or against the detected one.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequencesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	alphabet, err := sequence.ParseAlphabet(req.Type)
	if err != nil {
		writeError(w, badRequest(err))
		return
	}

	_, alphabet, err = sequence.Prepare(sequence.Label(req.Sequences), alphabet)
	if err != nil {
		writeJSON(w, http.StatusOK, ValidateResponse{Valid: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ValidateResponse{Valid: true, SequenceType: alphabet.String()})
}

// SequenceSetStatsHandler handles length statistics requests.
func SequenceSetStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req SequencesRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	alphabet, err := sequence.ParseAlphabet(req.Type)
	if err != nil {
		writeError(w, badRequest(err))
		return
	}

	seqs, _, err := sequence.Prepare(sequence.Label(req.Sequences), alphabet)
	if err != nil {
		writeError(w, err)
		return
	}

	summary, err := stats.FromSequences(seqs)
	if err != nil {
		writeError(w, badRequest(err))
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
