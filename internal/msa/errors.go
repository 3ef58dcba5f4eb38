package msa

import "fmt"

// Error is implemented by every error the alignment pipeline reports.
type Error interface {
	error
	IsMSAError()
}

// DegenerateMatrixError is returned when fewer than two sequences are
// supplied, leaving no pair to score.
type DegenerateMatrixError struct {
	N int
}

func (e *DegenerateMatrixError) Error() string {
	return fmt.Sprintf("at least two sequences are required, got %d", e.N)
}

func (e *DegenerateMatrixError) IsMSAError() {}

// LengthMismatchError is returned when a pairwise alignment cannot be
// reconciled with the center sequence during the merge.
type LengthMismatchError struct {
	Row    int
	Want   int
	Got    int
	Reason string
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("sequence %d cannot be merged: %s (want %d, got %d)",
		e.Row+1, e.Reason, e.Want, e.Got)
}

func (e *LengthMismatchError) IsMSAError() {}
