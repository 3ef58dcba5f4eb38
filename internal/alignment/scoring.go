// Package alignment provides pairwise global sequence alignment.
//
// This package implements the Needleman-Wunsch algorithm with a linear gap
// penalty and a fixed, configurable tie-break order for the traceback.
package alignment

import (
	"fmt"
	"strings"
)

// Gap is the character emitted opposite a residue in an alignment.
const Gap = '-'

// AlignDirection represents the traceback direction in the alignment matrix.
type AlignDirection int

const (
	// Stop represents the origin of the matrix
	Stop AlignDirection = iota
	// Diagonal represents a match or mismatch
	Diagonal
	// Up represents a gap in sequence b
	Up
	// Left represents a gap in sequence a
	Left
)

func (d AlignDirection) String() string {
	switch d {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "stop"
	}
}

// bit is the flag a direction occupies in a traceback cell.
func (d AlignDirection) bit() byte {
	return 1 << uint(d)
}

// TieBreak is the order in which equally scoring predecessors are preferred
// during traceback.
type TieBreak [3]AlignDirection

// DefaultTieBreak prefers a diagonal move, then a vertical move (gap in b),
// then a horizontal move (gap in a).
var DefaultTieBreak = TieBreak{Diagonal, Up, Left}

// ParseTieBreak reads a comma separated permutation of diagonal, up and left.
func ParseTieBreak(s string) (TieBreak, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return TieBreak{}, fmt.Errorf("tie-break %q must name diagonal, up and left once each", s)
	}

	var tb TieBreak
	seen := make(map[AlignDirection]bool)
	for i, p := range parts {
		var d AlignDirection
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "diagonal", "diag", "d":
			d = Diagonal
		case "up", "vertical", "u":
			d = Up
		case "left", "horizontal", "l":
			d = Left
		default:
			return TieBreak{}, fmt.Errorf("unknown tie-break direction %q", p)
		}
		if seen[d] {
			return TieBreak{}, fmt.Errorf("tie-break %q repeats %s", s, d)
		}
		seen[d] = true
		tb[i] = d
	}
	return tb, nil
}

func (tb TieBreak) String() string {
	return fmt.Sprintf("%s,%s,%s", tb[0], tb[1], tb[2])
}

// Scoring represents the scoring parameters for alignment: a score for
// identical residues, a score for differing residues and a linear penalty
// added for every gap column.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// NewScoring creates a scoring scheme with validation.
func NewScoring(match, mismatch, gap int) (Scoring, error) {
	if match <= mismatch {
		return Scoring{}, fmt.Errorf("match score (%d) must be greater than mismatch score (%d)", match, mismatch)
	}
	if gap > 0 {
		return Scoring{}, fmt.Errorf("gap penalty should be <= 0")
	}

	return Scoring{Match: match, Mismatch: mismatch, Gap: gap}, nil
}

// DefaultScoring returns match=1, mismatch=-1, gap=-2.
func DefaultScoring() Scoring {
	return Scoring{Match: 1, Mismatch: -1, Gap: -2}
}

// Score returns the score for comparing two residues.
func (s Scoring) Score(a, b byte) int {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// String returns a string representation of the scoring scheme.
func (s Scoring) String() string {
	return fmt.Sprintf("Scoring(match=%d, mismatch=%d, gap=%d)", s.Match, s.Mismatch, s.Gap)
}
