package msa

import (
	"context"
	"fmt"
	"strings"

	"github.com/aria-lang/centerstar-go/internal/alignment"
)

// StarPair is the alignment of one non-center sequence against the
// ungapped center. AlignedA of the alignment is the gapped center and
// AlignedB the gapped partner.
type StarPair struct {
	Index     int
	Alignment *alignment.Alignment
}

// Alignment is a multiple sequence alignment. Rows follow input order and
// all have the same length.
type Alignment struct {
	Rows   []string
	Center int
}

// Len returns the number of columns.
func (a *Alignment) Len() int {
	if len(a.Rows) == 0 {
		return 0
	}
	return len(a.Rows[0])
}

// Column returns the characters of column j, one per row.
func (a *Alignment) Column(j int) []byte {
	col := make([]byte, len(a.Rows))
	for i, row := range a.Rows {
		col[i] = row[j]
	}
	return col
}

// AlignToCenter aligns every non-center sequence to the original center
// sequence. The pairs are independent of each other and returned in input
// order.
func AlignToCenter(ctx context.Context, seqs []string, center int, al *alignment.Aligner) ([]StarPair, error) {
	if center < 0 || center >= len(seqs) {
		return nil, fmt.Errorf("center index %d out of range for %d sequences", center, len(seqs))
	}

	pairs := make([]StarPair, 0, len(seqs)-1)
	for i, s := range seqs {
		if i == center {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		aln, err := al.Align(seqs[center], s)
		if err != nil {
			return nil, fmt.Errorf("aligning sequence %d to center: %w", i+1, err)
		}
		pairs = append(pairs, StarPair{Index: i, Alignment: aln})
	}

	return pairs, nil
}

// SelectReference picks the pair whose gapped center provides the base
// column layout for Merge: the last one computed. It returns -1 when pairs
// is empty.
func SelectReference(pairs []StarPair) int {
	return len(pairs) - 1
}

// Merge reconciles the star pairs into one rectangular alignment.
//
// The gapped center of the reference pair fixes the initial layout. Every
// gap run of a pair's center falls into a slot before, between or after
// center residues; each slot is widened to the longest run any pair places
// there. A row writes its own inserted residues at the start of a slot and
// is padded with gaps to the slot width. When all pairs agree with the
// reference, the result is exactly as long as the reference.
func Merge(centerIndex int, pairs []StarPair) (*Alignment, error) {
	ref := SelectReference(pairs)
	if ref < 0 {
		return nil, &DegenerateMatrixError{N: 1}
	}

	n := len(pairs) + 1
	if centerIndex < 0 || centerIndex >= n {
		return nil, fmt.Errorf("center index %d out of range for %d sequences", centerIndex, n)
	}

	center := strings.ReplaceAll(pairs[ref].Alignment.AlignedA, string(alignment.Gap), "")
	width := slotWidths(pairs[ref].Alignment.AlignedA, len(center))

	inserts := make([][]string, len(pairs))
	aligned := make([][]byte, len(pairs))
	seen := make([]bool, n)
	seen[centerIndex] = true

	for p, pair := range pairs {
		if pair.Index < 0 || pair.Index >= n || seen[pair.Index] {
			return nil, fmt.Errorf("invalid or repeated sequence index %d", pair.Index)
		}
		seen[pair.Index] = true

		ins, col, err := splitPair(pair, center)
		if err != nil {
			return nil, err
		}
		for k, s := range ins {
			width[k] = max(width[k], len(s))
		}
		inserts[p] = ins
		aligned[p] = col
	}

	length := len(center)
	for _, w := range width {
		length += w
	}

	rows := make([]string, n)
	rows[centerIndex] = buildRow(width, nil, []byte(center), length)
	for p, pair := range pairs {
		rows[pair.Index] = buildRow(width, inserts[p], aligned[p], length)
	}

	for i, row := range rows {
		if len(row) != length {
			return nil, &LengthMismatchError{Row: i, Want: length, Got: len(row), Reason: "row length differs"}
		}
	}

	return &Alignment{Rows: rows, Center: centerIndex}, nil
}

// slotWidths returns, for each of the len(center)+1 slots, the length of
// the gap run the gapped center places there.
func slotWidths(gappedCenter string, centerLen int) []int {
	width := make([]int, centerLen+1)
	k := 0
	for i := 0; i < len(gappedCenter); i++ {
		if gappedCenter[i] == alignment.Gap {
			width[k]++
			continue
		}
		k++
	}
	return width
}

// splitPair walks one pair and returns the partner residues inserted in
// each slot and the partner character aligned to each center residue.
func splitPair(pair StarPair, center string) ([]string, []byte, error) {
	a, b := pair.Alignment.AlignedA, pair.Alignment.AlignedB
	if len(a) != len(b) {
		return nil, nil, &LengthMismatchError{
			Row: pair.Index, Want: len(a), Got: len(b),
			Reason: "aligned rows differ in length",
		}
	}

	inserts := make([]strings.Builder, len(center)+1)
	col := make([]byte, 0, len(center))
	k := 0

	for i := 0; i < len(a); i++ {
		if a[i] == alignment.Gap {
			inserts[k].WriteByte(b[i])
			continue
		}
		if k >= len(center) || a[i] != center[k] {
			return nil, nil, &LengthMismatchError{
				Row: pair.Index, Want: len(center), Got: len(strings.ReplaceAll(a, string(alignment.Gap), "")),
				Reason: "aligned center does not spell the center sequence",
			}
		}
		col = append(col, b[i])
		k++
	}

	if k != len(center) {
		return nil, nil, &LengthMismatchError{
			Row: pair.Index, Want: len(center), Got: k,
			Reason: "aligned center does not spell the center sequence",
		}
	}

	out := make([]string, len(inserts))
	for i := range inserts {
		out[i] = inserts[i].String()
	}
	return out, col, nil
}

// buildRow lays out one row: for each slot the inserted residues padded
// with gaps to the slot width, then the character aligned to the next
// center residue.
func buildRow(width []int, inserts []string, aligned []byte, length int) string {
	var row strings.Builder
	row.Grow(length)

	for k, w := range width {
		ins := ""
		if inserts != nil {
			ins = inserts[k]
		}
		row.WriteString(ins)
		row.WriteString(strings.Repeat(string(alignment.Gap), w-len(ins)))

		if k < len(aligned) {
			row.WriteByte(aligned[k])
		}
	}
	return row.String()
}
