package stats

import (
	"fmt"
	"sort"

	"github.com/aria-lang/centerstar-go/internal/sequence"
)

// SequenceSetStats represents statistics for the input sequences of a run.
type SequenceSetStats struct {
	Count         int     `json:"count"`
	TotalResidues int     `json:"total_residues"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	MeanLength    float64 `json:"mean_length"`
	MedianLength  int     `json:"median_length"`
}

// FromSequences calculates statistics for a collection of sequences.
func FromSequences(sequences []*sequence.Sequence) (*SequenceSetStats, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}

	count := len(sequences)
	lengths := make([]int, count)
	total := 0

	for i, seq := range sequences {
		lengths[i] = seq.Len()
		total += seq.Len()
	}

	sort.Ints(lengths)

	mid := count / 2
	var median int
	if count%2 == 0 {
		median = (lengths[mid-1] + lengths[mid]) / 2
	} else {
		median = lengths[mid]
	}

	return &SequenceSetStats{
		Count:         count,
		TotalResidues: total,
		MinLength:     lengths[0],
		MaxLength:     lengths[count-1],
		MeanLength:    round2(float64(total) / float64(count)),
		MedianLength:  median,
	}, nil
}

func (s *SequenceSetStats) String() string {
	return fmt.Sprintf(`SequenceSetStats {
  count: %d
  total residues: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
}`, s.Count, s.TotalResidues, s.MinLength, s.MaxLength, s.MeanLength, s.MedianLength)
}
