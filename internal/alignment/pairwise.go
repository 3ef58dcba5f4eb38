package alignment

import (
	"fmt"
	"math"
	"strings"
)

// Alignment is one global alignment of two sequences. Both rows have the
// same length and spell their source sequence once gaps are removed.
type Alignment struct {
	AlignedA string
	AlignedB string
	Score    int
}

// NewAlignment creates a new alignment result.
func NewAlignment(alignedA, alignedB string, score int) (*Alignment, error) {
	if len(alignedA) != len(alignedB) {
		return nil, fmt.Errorf("aligned sequences must have equal length (%d != %d)", len(alignedA), len(alignedB))
	}
	return &Alignment{AlignedA: alignedA, AlignedB: alignedB, Score: score}, nil
}

// Length returns the number of alignment columns.
func (a *Alignment) Length() int {
	return len(a.AlignedA)
}

// MatchCount returns the number of identical residue columns.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedA); i++ {
		if a.AlignedA[i] == a.AlignedB[i] && a.AlignedA[i] != Gap {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of columns pairing two different residues.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedA); i++ {
		if a.AlignedA[i] != a.AlignedB[i] &&
			a.AlignedA[i] != Gap && a.AlignedB[i] != Gap {
			count++
		}
	}
	return count
}

// TotalGaps returns the number of gap characters in both rows.
func (a *Alignment) TotalGaps() int {
	return strings.Count(a.AlignedA, string(Gap)) + strings.Count(a.AlignedB, string(Gap))
}

// Identity returns identical positions as a percentage of the alignment
// length, rounded to two decimals.
func (a *Alignment) Identity() float64 {
	if len(a.AlignedA) == 0 {
		return 0
	}
	return math.Round(float64(a.MatchCount())/float64(len(a.AlignedA))*100*100) / 100
}

// ToCIGAR generates a CIGAR string with M, X, I and D operations.
func (a *Alignment) ToCIGAR() string {
	if len(a.AlignedA) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0

	for i := 0; i < len(a.AlignedA); i++ {
		var op byte
		switch {
		case a.AlignedA[i] == Gap:
			op = 'I'
		case a.AlignedB[i] == Gap:
			op = 'D'
		case a.AlignedA[i] == a.AlignedB[i]:
			op = 'M'
		default:
			op = 'X'
		}

		if op == currentOp {
			count++
			continue
		}
		if count > 0 {
			fmt.Fprintf(&cigar, "%d%c", count, currentOp)
		}
		currentOp = op
		count = 1
	}
	fmt.Fprintf(&cigar, "%d%c", count, currentOp)

	return cigar.String()
}

// MatchLine returns the middle line of the three-line view: '|' for
// identical residues, '.' for mismatches and ' ' against a gap.
func (a *Alignment) MatchLine() string {
	var line strings.Builder
	for i := 0; i < len(a.AlignedA); i++ {
		switch {
		case a.AlignedA[i] == Gap || a.AlignedB[i] == Gap:
			line.WriteByte(' ')
		case a.AlignedA[i] == a.AlignedB[i]:
			line.WriteByte('|')
		default:
			line.WriteByte('.')
		}
	}
	return line.String()
}

// Format returns a formatted string representation of the alignment.
func (a *Alignment) Format() string {
	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.2f%%\nCIGAR: %s",
		a.AlignedA, a.MatchLine(), a.AlignedB, a.Score, a.Identity(), a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { score: %d, identity: %.2f%%, length: %d }",
		a.Score, a.Identity(), a.Length())
}
