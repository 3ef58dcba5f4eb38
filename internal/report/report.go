// Package report formats alignment results as text reports, JSON documents
// and CSV matrices.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aria-lang/centerstar-go/internal/alignment"
	"github.com/aria-lang/centerstar-go/internal/stats"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// Parameters are the scoring parameters of a run.
type Parameters struct {
	Match    int `json:"match"`
	Mismatch int `json:"mismatch"`
	Gap      int `json:"gap"`
}

func parameters(s alignment.Scoring) Parameters {
	return Parameters{Match: s.Match, Mismatch: s.Mismatch, Gap: s.Gap}
}

// SequenceEntry is one input sequence.
type SequenceEntry struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
}

// AlignedEntry is one row of the multiple alignment.
type AlignedEntry struct {
	ID      string `json:"id"`
	Aligned string `json:"aligned"`
}

// Document is the JSON form of a multiple alignment run.
type Document struct {
	Parameters     Parameters              `json:"parameters"`
	TieBreak       string                  `json:"tie_break"`
	SequenceType   string                  `json:"sequence_type"`
	CenterIndex    int                     `json:"center_index"`
	CenterID       string                  `json:"center_id"`
	Sequences      []SequenceEntry         `json:"sequences"`
	Alignment      []AlignedEntry          `json:"alignment"`
	ScoreMatrix    [][]int                 `json:"score_matrix"`
	DistanceMatrix [][]int                 `json:"distance_matrix"`
	Statistics     *stats.Statistics       `json:"statistics"`
	Input          *stats.SequenceSetStats `json:"input,omitempty"`
}

// NewDocument collects the fields of a result for serialization.
func NewDocument(res *centerstar.Result) *Document {
	doc := &Document{
		Parameters:     parameters(res.Scoring),
		TieBreak:       res.TieBreak.String(),
		SequenceType:   res.Alphabet.String(),
		CenterIndex:    res.Center,
		CenterID:       res.CenterID(),
		Sequences:      make([]SequenceEntry, len(res.Sequences)),
		Alignment:      make([]AlignedEntry, len(res.Sequences)),
		ScoreMatrix:    res.Scores.Rows(),
		DistanceMatrix: res.Distances.Rows(),
		Statistics:     res.Statistics,
		Input:          res.Input,
	}

	for i, s := range res.Sequences {
		doc.Sequences[i] = SequenceEntry{ID: s.ID, Sequence: s.Residues}
		doc.Alignment[i] = AlignedEntry{ID: s.ID, Aligned: res.Alignment.Rows[i]}
	}
	return doc
}

// PathEntry is one alignment of a pairwise report.
type PathEntry struct {
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Score       int     `json:"score"`
	Length      int     `json:"length"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
}

// PairwiseDocument is the JSON form of a pairwise run.
type PairwiseDocument struct {
	Parameters   Parameters      `json:"parameters"`
	SequenceType string          `json:"sequence_type"`
	Sequences    []SequenceEntry `json:"sequences"`
	Alignments   []PathEntry     `json:"alignments"`
}

// NewPairwiseDocument collects the fields of a pairwise result.
func NewPairwiseDocument(res *centerstar.PairwiseResult, scoring alignment.Scoring) *PairwiseDocument {
	doc := &PairwiseDocument{
		Parameters:   parameters(scoring),
		SequenceType: res.Alphabet.String(),
		Alignments:   make([]PathEntry, len(res.Alignments)),
	}
	for _, s := range res.Sequences {
		doc.Sequences = append(doc.Sequences, SequenceEntry{ID: s.ID, Sequence: s.Residues})
	}
	for i, a := range res.Alignments {
		doc.Alignments[i] = PathEntry{
			AlignedSeq1: a.AlignedA,
			AlignedSeq2: a.AlignedB,
			Score:       a.Score,
			Length:      a.Length(),
			Matches:     a.MatchCount(),
			Mismatches:  a.MismatchCount(),
			Gaps:        a.TotalGaps(),
			Identity:    a.Identity(),
			CIGAR:       a.ToCIGAR(),
		}
	}
	return doc
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteText writes the human-readable report of a multiple alignment.
func WriteText(w io.Writer, res *centerstar.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Scoring: %s\n", res.Scoring)
	fmt.Fprintf(&b, "Detected type: %s\n", res.Alphabet)
	fmt.Fprintf(&b, "Center sequence: %s (index %d)\n\n", res.CenterID(), res.Center)

	b.WriteString("Alignment:\n")
	for i, s := range res.Sequences {
		fmt.Fprintf(&b, "%s: %s\n", s.ID, res.Alignment.Rows[i])
	}

	b.WriteString("\nStatistics:\n")
	writeStatistics(&b, res.Statistics)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeStatistics(b *strings.Builder, s *stats.Statistics) {
	fmt.Fprintf(b, "Alignment length: %d\n", s.AlignmentLength)
	fmt.Fprintf(b, "Matches: %d\n", s.Matches)
	fmt.Fprintf(b, "Mismatches: %d\n", s.Mismatches)
	fmt.Fprintf(b, "Gaps: %d\n", s.Gaps)
	fmt.Fprintf(b, "Identity percent: %.2f\n", s.IdentityPercent)
}

// WritePairwiseText writes a report listing every alignment path of a
// pairwise run.
func WritePairwiseText(w io.Writer, res *centerstar.PairwiseResult, scoring alignment.Scoring) error {
	var b strings.Builder

	b.WriteString("Needleman-Wunsch Multi-Path Alignment Report\n")
	fmt.Fprintf(&b, "Scoring: match=%d, mismatch=%d, gap=%d\n", scoring.Match, scoring.Mismatch, scoring.Gap)
	fmt.Fprintf(&b, "Sequence type: %s\n", res.Alphabet)
	for i, s := range res.Sequences {
		fmt.Fprintf(&b, "Sequence %d: %s  %s\n", i+1, s.ID, s.Residues)
	}

	for i, a := range res.Alignments {
		fmt.Fprintf(&b, "\nPath %d:\n", i+1)
		fmt.Fprintf(&b, "  %s\n  %s\n  %s\n", a.AlignedA, a.MatchLine(), a.AlignedB)
		fmt.Fprintf(&b, "  Score: %d\n", a.Score)
		fmt.Fprintf(&b, "  Length: %d\n", a.Length())
		fmt.Fprintf(&b, "  Identical positions: %d (%.2f%%)\n", a.MatchCount(), a.Identity())
		fmt.Fprintf(&b, "  Total gaps: %d\n", a.TotalGaps())
		fmt.Fprintf(&b, "  CIGAR: %s\n", a.ToCIGAR())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteMatrix writes a square matrix as comma separated rows.
func WriteMatrix(w io.Writer, rows [][]int) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
