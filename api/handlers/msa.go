package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aria-lang/centerstar-go/internal/fastaio"
	"github.com/aria-lang/centerstar-go/internal/render"
	"github.com/aria-lang/centerstar-go/internal/report"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// SequenceInput is one named input sequence.
type SequenceInput struct {
	ID       string `json:"id,omitempty"`
	Sequence string `json:"sequence"`
}

// MSARequest represents a multiple alignment request. Sequences may be
// given as a list or as FASTA text.
type MSARequest struct {
	Sequences []SequenceInput `json:"sequences,omitempty"`
	FASTA     string          `json:"fasta,omitempty"`
	OptionsRequest
}

func (req MSARequest) records() ([]centerstar.Record, error) {
	if req.FASTA != "" {
		if len(req.Sequences) > 0 {
			return nil, badRequest(errors.New("give either sequences or fasta, not both"))
		}
		records, err := fastaio.Parse(strings.NewReader(req.FASTA))
		if err != nil {
			return nil, badRequest(err)
		}
		return records, nil
	}

	records := make([]centerstar.Record, len(req.Sequences))
	for i, s := range req.Sequences {
		records[i] = centerstar.Record{ID: s.ID, Raw: s.Sequence}
	}
	return records, nil
}

func runMSA(r *http.Request, defaults centerstar.Options) (*centerstar.Result, error) {
	var req MSARequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	opts, err := req.apply(defaults)
	if err != nil {
		return nil, err
	}

	records, err := req.records()
	if err != nil {
		return nil, err
	}

	return centerstar.Run(r.Context(), records, opts)
}

// MSAHandler handles multiple alignment requests and responds with the
// full result document.
func MSAHandler(defaults centerstar.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := runMSA(r, defaults)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report.NewDocument(res))
	}
}

// MSAImageHandler handles multiple alignment requests and responds with
// the PNG block view.
func MSAImageHandler(defaults centerstar.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := runMSA(r, defaults)
		if err != nil {
			writeError(w, err)
			return
		}

		img, err := render.Draw(res.IDs(), res.Alignment.Rows)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		render.Encode(w, img)
	}
}

// MSAFastaHandler handles multiple alignment requests and responds with
// the alignment as aligned FASTA.
func MSAFastaHandler(defaults centerstar.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := runMSA(r, defaults)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/x-fasta")
		res.WriteFASTA(w, 60)
	}
}
