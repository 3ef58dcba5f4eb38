package handlers

import (
	"net/http"

	"github.com/aria-lang/centerstar-go/internal/report"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// AlignmentRequest represents a pairwise alignment request.
type AlignmentRequest struct {
	ID1       string `json:"id1,omitempty"`
	Sequence1 string `json:"sequence1"`
	ID2       string `json:"id2,omitempty"`
	Sequence2 string `json:"sequence2"`
	// Paths is the number of co-optimal alignments to return, default 1.
	Paths int `json:"paths,omitempty"`
	OptionsRequest
}

// MaxPaths bounds the co-optimal alignments a single request may ask for.
const MaxPaths = 100

// PairwiseHandler handles global pairwise alignment requests.
func PairwiseHandler(defaults centerstar.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AlignmentRequest
		if err := decode(r, &req); err != nil {
			writeError(w, err)
			return
		}

		opts, err := req.apply(defaults)
		if err != nil {
			writeError(w, err)
			return
		}

		paths := min(max(req.Paths, 1), MaxPaths)
		res, err := centerstar.Pairwise(
			centerstar.Record{ID: req.ID1, Raw: req.Sequence1},
			centerstar.Record{ID: req.ID2, Raw: req.Sequence2},
			opts, paths,
		)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report.NewPairwiseDocument(res, opts.Scoring))
	}
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// AlignmentScoreHandler handles alignment score requests.
func AlignmentScoreHandler(defaults centerstar.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AlignmentRequest
		if err := decode(r, &req); err != nil {
			writeError(w, err)
			return
		}

		opts, err := req.apply(defaults)
		if err != nil {
			writeError(w, err)
			return
		}

		score, err := centerstar.Score(
			centerstar.Record{ID: req.ID1, Raw: req.Sequence1},
			centerstar.Record{ID: req.ID2, Raw: req.Sequence2},
			opts,
		)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ScoreResponse{Score: score})
	}
}
