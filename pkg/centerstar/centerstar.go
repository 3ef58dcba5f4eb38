// Package centerstar provides a high-level API for center-star multiple
// sequence alignment.
//
// Example usage:
//
//	records, err := centerstar.ReadFASTA("input.fasta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := centerstar.Run(ctx, records, centerstar.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, row := range result.Alignment.Rows {
//	    fmt.Printf("%s: %s\n", result.Sequences[i].ID, row)
//	}
package centerstar

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aria-lang/centerstar-go/internal/alignment"
	"github.com/aria-lang/centerstar-go/internal/fastaio"
	"github.com/aria-lang/centerstar-go/internal/msa"
	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/aria-lang/centerstar-go/internal/stats"
)

// Re-export types for convenience
type (
	Record         = sequence.Record
	Sequence       = sequence.Sequence
	Alphabet       = sequence.Alphabet
	Scoring        = alignment.Scoring
	TieBreak       = alignment.TieBreak
	Alignment      = alignment.Alignment
	MSA            = msa.Alignment
	ScoreMatrix    = msa.ScoreMatrix
	DistanceMatrix = msa.DistanceMatrix
	Statistics     = stats.Statistics
)

// Constants
const (
	DNA     = sequence.DNA
	RNA     = sequence.RNA
	Protein = sequence.Protein
	Unknown = sequence.Unknown
)

// Options configures one run.
type Options struct {
	Scoring  Scoring
	TieBreak TieBreak
	// Alphabet is detected from the input when Unknown.
	Alphabet Alphabet
	// Verbose logs the duration of every pipeline stage.
	Verbose bool
}

// DefaultOptions returns match=1, mismatch=-1, gap=-2, the default
// tie-break order and alphabet detection.
func DefaultOptions() Options {
	return Options{
		Scoring:  alignment.DefaultScoring(),
		TieBreak: alignment.DefaultTieBreak,
		Alphabet: Unknown,
	}
}

func (o Options) aligner() *alignment.Aligner {
	return alignment.NewAligner(o.Scoring, o.TieBreak)
}

// Result is the outcome of a run. Alignment rows, Sequences and the matrix
// indices all follow input order.
type Result struct {
	Scoring    Scoring
	TieBreak   TieBreak
	Alphabet   Alphabet
	Sequences  []*Sequence
	Scores     *ScoreMatrix
	Distances  *DistanceMatrix
	Center     int
	Alignment  *MSA
	Statistics *Statistics
	Input      *stats.SequenceSetStats
}

// IDs returns the sequence identifiers in input order.
func (r *Result) IDs() []string {
	ids := make([]string, len(r.Sequences))
	for i, s := range r.Sequences {
		ids[i] = s.ID
	}
	return ids
}

// CenterID returns the identifier of the center sequence.
func (r *Result) CenterID() string {
	return r.Sequences[r.Center].ID
}

// Run validates the records and aligns them with the center-star method.
// The context is checked between pairwise alignments.
func Run(ctx context.Context, records []Record, opts Options) (*Result, error) {
	start := time.Now()

	seqs, alphabet, err := sequence.Prepare(records, opts.Alphabet)
	if err != nil {
		return nil, err
	}
	if len(seqs) < 2 {
		return nil, &msa.DegenerateMatrixError{N: len(seqs)}
	}
	opts.logf("validated %d %s sequences in %s", len(seqs), alphabet, time.Since(start))

	residues := make([]string, len(seqs))
	for i, s := range seqs {
		residues[i] = s.Residues
	}

	start = time.Now()
	built, err := msa.Build(ctx, residues, opts.aligner())
	if err != nil {
		return nil, err
	}
	opts.logf("aligned %d sequences to center %s in %s", len(seqs), seqs[built.Center].ID, time.Since(start))

	summary, err := stats.Compute(built.Alignment.Rows)
	if err != nil {
		return nil, err
	}

	input, err := stats.FromSequences(seqs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Scoring:    opts.Scoring,
		TieBreak:   opts.aligner().TieBreak,
		Alphabet:   alphabet,
		Sequences:  seqs,
		Scores:     built.Scores,
		Distances:  built.Distances,
		Center:     built.Center,
		Alignment:  built.Alignment,
		Statistics: summary,
		Input:      input,
	}, nil
}

// RunStrings labels bare sequences seq1..seqN and runs them.
func RunStrings(ctx context.Context, raw []string, opts Options) (*Result, error) {
	return Run(ctx, sequence.Label(raw), opts)
}

// PairwiseResult holds one or more co-optimal global alignments of two
// sequences.
type PairwiseResult struct {
	Alphabet   Alphabet
	Sequences  [2]*Sequence
	Alignments []*Alignment
}

// Pairwise validates two records and returns up to paths co-optimal
// alignments; the first is the alignment chosen by the tie-break order.
func Pairwise(a, b Record, opts Options, paths int) (*PairwiseResult, error) {
	if paths <= 0 {
		paths = 1
	}

	seqs, alphabet, err := sequence.Prepare([]Record{a, b}, opts.Alphabet)
	if err != nil {
		return nil, err
	}

	alns, err := opts.aligner().AllOptimal(seqs[0].Residues, seqs[1].Residues, paths)
	if err != nil {
		return nil, err
	}

	return &PairwiseResult{
		Alphabet:   alphabet,
		Sequences:  [2]*Sequence{seqs[0], seqs[1]},
		Alignments: alns,
	}, nil
}

// Score validates two records and returns their optimal global alignment
// score without traceback.
func Score(a, b Record, opts Options) (int, error) {
	seqs, _, err := sequence.Prepare([]Record{a, b}, opts.Alphabet)
	if err != nil {
		return 0, err
	}
	return opts.aligner().ScoreOnly(seqs[0].Residues, seqs[1].Residues)
}

// DetectAlphabet uppercases the sequences and returns the unique alphabet
// that covers all of them.
func DetectAlphabet(raw []string) (Alphabet, error) {
	seqs := make([]string, len(raw))
	for i, s := range raw {
		seqs[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	return sequence.Detect(seqs)
}

// ReadFASTA reads records from a FASTA file.
func ReadFASTA(filename string) ([]Record, error) {
	return fastaio.ReadFile(filename)
}

// WriteFASTA writes the alignment rows as aligned FASTA, wrapped at columns.
func (r *Result) WriteFASTA(w io.Writer, columns int) error {
	return fastaio.Write(w, r.IDs(), r.Alignment.Rows, columns)
}

func (o Options) logf(format string, v ...interface{}) {
	if o.Verbose {
		log.Printf(format, v...)
	}
}
