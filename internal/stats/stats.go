// Package stats provides quality summaries for multiple alignments and the
// sequence sets they are built from.
package stats

import (
	"fmt"
	"math"
)

const gap = '-'

// ColumnClass is the classification of one alignment column.
type ColumnClass int

const (
	// Match means every row holds the same residue
	Match ColumnClass = iota
	// Mismatch means every row holds a residue and at least two differ
	Mismatch
	// GapColumn means at least one row, but not all, holds a gap
	GapColumn
	// AllGap means every row holds a gap; such columns are skipped
	AllGap
)

func (c ColumnClass) String() string {
	switch c {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case GapColumn:
		return "gap"
	default:
		return "all-gap"
	}
}

// Statistics summarizes a multiple alignment.
//
// Invariant: Matches + Mismatches + Gaps + Skipped == AlignmentLength.
type Statistics struct {
	AlignmentLength int     `json:"alignment_length"`
	Matches         int     `json:"matches"`
	Mismatches      int     `json:"mismatches"`
	Gaps            int     `json:"gaps"`
	Skipped         int     `json:"skipped"`
	IdentityPercent float64 `json:"identity_percent"`
}

// Classify returns the class of column j of rows.
func Classify(rows []string, j int) ColumnClass {
	gaps := 0
	for _, row := range rows {
		if row[j] == gap {
			gaps++
		}
	}

	switch {
	case gaps == len(rows):
		return AllGap
	case gaps > 0:
		return GapColumn
	}

	for _, row := range rows[1:] {
		if row[j] != rows[0][j] {
			return Mismatch
		}
	}
	return Match
}

// Profile classifies every column of rows.
func Profile(rows []string) ([]ColumnClass, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}

	classes := make([]ColumnClass, len(rows[0]))
	for j := range classes {
		classes[j] = Classify(rows, j)
	}
	return classes, nil
}

// Compute classifies every column and derives the summary. Identity is the
// share of match columns in the full alignment length, in percent rounded
// to two decimals.
func Compute(rows []string) (*Statistics, error) {
	classes, err := Profile(rows)
	if err != nil {
		return nil, err
	}

	s := &Statistics{AlignmentLength: len(classes)}
	for _, c := range classes {
		switch c {
		case Match:
			s.Matches++
		case Mismatch:
			s.Mismatches++
		case GapColumn:
			s.Gaps++
		case AllGap:
			s.Skipped++
		}
	}

	if s.AlignmentLength > 0 {
		s.IdentityPercent = round2(float64(s.Matches) / float64(s.AlignmentLength) * 100)
	}
	return s, nil
}

func (s *Statistics) String() string {
	return fmt.Sprintf(`Statistics {
  alignment length: %d
  matches: %d
  mismatches: %d
  gaps: %d
  identity: %.2f%%
}`, s.AlignmentLength, s.Matches, s.Mismatches, s.Gaps, s.IdentityPercent)
}

func checkRows(rows []string) error {
	if len(rows) == 0 {
		return fmt.Errorf("alignment has no rows")
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return fmt.Errorf("row %d has length %d, expected %d", i+1, len(row), len(rows[0]))
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
