// Package msa builds a center-star multiple sequence alignment.
//
// The pipeline scores every pair of sequences, converts the scores to
// distances, picks the sequence closest to all others as the center, aligns
// every other sequence to that center and finally merges the pairwise
// alignments into one rectangular alignment.
package msa

import (
	"context"
	"fmt"

	"github.com/aria-lang/centerstar-go/internal/alignment"
)

// square is a fixed-shape N×N integer matrix kept symmetric by its setter.
type square struct {
	n     int
	cells []int
}

func newSquare(n int) square {
	return square{n: n, cells: make([]int, n*n)}
}

// N returns the number of rows (and columns).
func (s *square) N() int {
	return s.n
}

// At returns the value at row i, column j.
func (s *square) At(i, j int) int {
	return s.cells[i*s.n+j]
}

func (s *square) set(i, j, v int) {
	s.cells[i*s.n+j] = v
	s.cells[j*s.n+i] = v
}

// RowSum returns the sum of row i.
func (s *square) RowSum(i int) int {
	sum := 0
	for _, v := range s.cells[i*s.n : (i+1)*s.n] {
		sum += v
	}
	return sum
}

// Rows returns a copy of the matrix as nested slices.
func (s *square) Rows() [][]int {
	rows := make([][]int, s.n)
	for i := range rows {
		rows[i] = make([]int, s.n)
		copy(rows[i], s.cells[i*s.n:(i+1)*s.n])
	}
	return rows
}

// ScoreMatrix holds the optimal pairwise alignment score of every pair of
// sequences. It is symmetric with a zero diagonal.
type ScoreMatrix struct {
	square
}

// NewScoreMatrix returns an n×n zero matrix.
func NewScoreMatrix(n int) *ScoreMatrix {
	return &ScoreMatrix{square: newSquare(n)}
}

// Set stores v at (i, j) and (j, i). The diagonal is never written.
func (m *ScoreMatrix) Set(i, j, v int) {
	if i == j {
		return
	}
	m.set(i, j, v)
}

// MaxOffDiagonal returns the largest score between two distinct sequences.
func (m *ScoreMatrix) MaxOffDiagonal() (int, error) {
	if m.n < 2 {
		return 0, &DegenerateMatrixError{N: m.n}
	}

	best := m.At(0, 1)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			best = max(best, m.At(i, j))
		}
	}
	return best, nil
}

// DistanceMatrix holds dissimilarities derived from a ScoreMatrix. Larger
// values mean less similar sequences; the diagonal is zero.
type DistanceMatrix struct {
	square
}

// BuildScoreMatrix aligns every unordered pair of sequences once and stores
// the optimal score symmetrically. Pairs are processed in row-major order
// and ctx is checked before each alignment.
func BuildScoreMatrix(ctx context.Context, seqs []string, al *alignment.Aligner) (*ScoreMatrix, error) {
	m := NewScoreMatrix(len(seqs))

	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			score, err := al.ScoreOnly(seqs[i], seqs[j])
			if err != nil {
				return nil, fmt.Errorf("scoring sequences %d and %d: %w", i+1, j+1, err)
			}
			m.Set(i, j, score)
		}
	}

	return m, nil
}

// ToDistance converts scores to distances with D[i][j] = Smax - M[i][j],
// where Smax is the maximum off-diagonal score.
func ToDistance(m *ScoreMatrix) (*DistanceMatrix, error) {
	smax, err := m.MaxOffDiagonal()
	if err != nil {
		return nil, err
	}

	d := &DistanceMatrix{square: newSquare(m.n)}
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			d.set(i, j, smax-m.At(i, j))
		}
	}
	return d, nil
}

// SelectCenter returns the index with the smallest distance row sum. Ties
// resolve to the lowest index.
func SelectCenter(d *DistanceMatrix) int {
	center := 0
	best := d.RowSum(0)

	for i := 1; i < d.n; i++ {
		if sum := d.RowSum(i); sum < best {
			best = sum
			center = i
		}
	}
	return center
}
