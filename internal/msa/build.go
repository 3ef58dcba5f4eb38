package msa

import (
	"context"
	"log"

	"github.com/aria-lang/centerstar-go/internal/alignment"
)

// Result carries every intermediate product of one center-star run.
type Result struct {
	Scores    *ScoreMatrix
	Distances *DistanceMatrix
	Center    int
	Pairs     []StarPair
	Alignment *Alignment
}

// Build runs the pipeline on already validated residue strings.
func Build(ctx context.Context, seqs []string, al *alignment.Aligner) (*Result, error) {
	if len(seqs) < 2 {
		return nil, &DegenerateMatrixError{N: len(seqs)}
	}

	scores, err := BuildScoreMatrix(ctx, seqs, al)
	if err != nil {
		return nil, err
	}

	distances, err := ToDistance(scores)
	if err != nil {
		return nil, err
	}

	center := SelectCenter(distances)
	log.Printf("msa: center sequence %d of %d", center+1, len(seqs))

	pairs, err := AlignToCenter(ctx, seqs, center, al)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged, err := Merge(center, pairs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Scores:    scores,
		Distances: distances,
		Center:    center,
		Pairs:     pairs,
		Alignment: merged,
	}, nil
}
