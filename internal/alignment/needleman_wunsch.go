package alignment

import (
	"fmt"

	"github.com/andrew-torda/matrix"

	"github.com/aria-lang/centerstar-go/internal/sequence"
)

// Aligner computes optimal global alignments under one scoring scheme and
// one traceback tie-break order. An Aligner holds no state between calls and
// may be shared by goroutines.
type Aligner struct {
	Scoring  Scoring
	TieBreak TieBreak
}

// NewAligner creates an aligner. An invalid tie-break order is replaced by
// DefaultTieBreak.
func NewAligner(scoring Scoring, tieBreak TieBreak) *Aligner {
	if !tieBreak.valid() {
		tieBreak = DefaultTieBreak
	}
	return &Aligner{Scoring: scoring, TieBreak: tieBreak}
}

// DefaultAligner uses DefaultScoring and DefaultTieBreak.
func DefaultAligner() *Aligner {
	return NewAligner(DefaultScoring(), DefaultTieBreak)
}

// NeedlemanWunsch aligns a and b globally with the default tie-break order.
func NeedlemanWunsch(a, b string, scoring Scoring) (*Alignment, error) {
	return NewAligner(scoring, DefaultTieBreak).Align(a, b)
}

func (tb TieBreak) valid() bool {
	var seen byte
	for _, d := range tb {
		if d != Diagonal && d != Up && d != Left {
			return false
		}
		seen |= d.bit()
	}
	return seen == Diagonal.bit()|Up.bit()|Left.bit()
}

func (al *Aligner) order() TieBreak {
	if al.TieBreak.valid() {
		return al.TieBreak
	}
	return DefaultTieBreak
}

func checkInput(a, b string) error {
	if len(a) == 0 {
		return &sequence.EmptySequenceError{Index: 0}
	}
	if len(b) == 0 {
		return &sequence.EmptySequenceError{Index: 1}
	}
	return nil
}

// Align performs global alignment of a against b.
//
// Row 0 and column 0 hold the cumulative gap penalty. Every other cell is
// the best of the diagonal, vertical and horizontal predecessors. The
// traceback walks from the bottom-right corner to the origin, taking the
// first optimal predecessor in tie-break order.
func (al *Aligner) Align(a, b string) (*Alignment, error) {
	if err := checkInput(a, b); err != nil {
		return nil, err
	}

	tb := matrix.NewBMatrix2d(len(a)+1, len(b)+1)
	score := al.fill(a, b, tb)

	order := al.order()
	i, j := len(a), len(b)
	outA := make([]byte, 0, i+j)
	outB := make([]byte, 0, i+j)

	for i > 0 || j > 0 {
		switch first(tb.Mat[i][j], order) {
		case Diagonal:
			outA = append(outA, a[i-1])
			outB = append(outB, b[j-1])
			i--
			j--
		case Up:
			outA = append(outA, a[i-1])
			outB = append(outB, Gap)
			i--
		case Left:
			outA = append(outA, Gap)
			outB = append(outB, b[j-1])
			j--
		default:
			panic(fmt.Sprintf("alignment: no optimal predecessor at (%d, %d)", i, j))
		}
	}

	return NewAlignment(reversed(outA), reversed(outB), score)
}

// ScoreOnly calculates the optimal global score without traceback, keeping
// two rows of the matrix.
func (al *Aligner) ScoreOnly(a, b string) (int, error) {
	if err := checkInput(a, b); err != nil {
		return 0, err
	}
	return al.fill(a, b, nil), nil
}

// AllOptimal enumerates up to limit distinct optimal alignments of a and b.
// Paths are visited depth first in tie-break order, so the first result is
// the alignment Align returns.
func (al *Aligner) AllOptimal(a, b string, limit int) ([]*Alignment, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	if err := checkInput(a, b); err != nil {
		return nil, err
	}

	tb := matrix.NewBMatrix2d(len(a)+1, len(b)+1)
	score := al.fill(a, b, tb)
	order := al.order()

	results := make([]*Alignment, 0, limit)
	bufA := make([]byte, 0, len(a)+len(b))
	bufB := make([]byte, 0, len(a)+len(b))

	var walk func(i, j int)
	walk = func(i, j int) {
		if i == 0 && j == 0 {
			results = append(results, &Alignment{
				AlignedA: reversed(bufA),
				AlignedB: reversed(bufB),
				Score:    score,
			})
			return
		}

		flags := tb.Mat[i][j]
		for _, d := range order {
			if flags&d.bit() == 0 {
				continue
			}
			switch d {
			case Diagonal:
				bufA = append(bufA, a[i-1])
				bufB = append(bufB, b[j-1])
				walk(i-1, j-1)
			case Up:
				bufA = append(bufA, a[i-1])
				bufB = append(bufB, Gap)
				walk(i-1, j)
			case Left:
				bufA = append(bufA, Gap)
				bufB = append(bufB, b[j-1])
				walk(i, j-1)
			}
			bufA = bufA[:len(bufA)-1]
			bufB = bufB[:len(bufB)-1]

			if len(results) >= limit {
				return
			}
		}
	}
	walk(len(a), len(b))

	return results, nil
}

// fill runs the recurrence and returns the bottom-right score. When tb is
// not nil every cell records the set of optimal predecessors as direction
// bits.
func (al *Aligner) fill(a, b string, tb *matrix.BMatrix2d) int {
	m, n := len(a), len(b)
	gap := al.Scoring.Gap

	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j * gap
		if tb != nil && j > 0 {
			tb.Mat[0][j] = Left.bit()
		}
	}

	for i := 1; i <= m; i++ {
		curr[0] = i * gap
		if tb != nil {
			tb.Mat[i][0] = Up.bit()
		}

		for j := 1; j <= n; j++ {
			diag := prev[j-1] + al.Scoring.Score(a[i-1], b[j-1])
			up := prev[j] + gap
			left := curr[j-1] + gap

			best := max(diag, up, left)
			curr[j] = best

			if tb != nil {
				var flags byte
				if diag == best {
					flags |= Diagonal.bit()
				}
				if up == best {
					flags |= Up.bit()
				}
				if left == best {
					flags |= Left.bit()
				}
				tb.Mat[i][j] = flags
			}
		}

		prev, curr = curr, prev
	}

	return prev[n]
}

// first returns the first direction of order present in flags.
func first(flags byte, order TieBreak) AlignDirection {
	for _, d := range order {
		if flags&d.bit() != 0 {
			return d
		}
	}
	return Stop
}

// reversed returns b back to front as a string.
func reversed(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return string(out)
}
