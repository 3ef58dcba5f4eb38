package centerstar

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/centerstar-go/internal/msa"
	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	res, err := RunStrings(context.Background(), []string{"ACGT", "AGGT", "ACCT"}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Center)
	assert.Equal(t, "seq1", res.CenterID())
	assert.Equal(t, []string{"seq1", "seq2", "seq3"}, res.IDs())
	assert.Equal(t, []string{"ACGT", "AGGT", "ACCT"}, res.Alignment.Rows)
	assert.Equal(t, 2, res.Scores.At(0, 1))
	assert.Equal(t, 4, res.Statistics.AlignmentLength)
	assert.Equal(t, 2, res.Statistics.Matches)
	assert.Equal(t, 2, res.Statistics.Mismatches)
	assert.Equal(t, 3, res.Input.Count)
}

func TestRunDetectsAlphabet(t *testing.T) {
	res, err := RunStrings(context.Background(), []string{"ACGU", "ACGU"}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, RNA, res.Alphabet)
	assert.Equal(t, 100.0, res.Statistics.IdentityPercent)
}

func TestRunGappedAlignment(t *testing.T) {
	opts := DefaultOptions()
	opts.Alphabet = DNA

	raw := []string{"ACGTACGT", "ACGACGT", "ACGTTACGT", "AGTACG"}
	res, err := RunStrings(context.Background(), raw, opts)
	require.NoError(t, err)

	length := res.Alignment.Len()
	for i, row := range res.Alignment.Rows {
		assert.Len(t, row, length)
		assert.Equal(t, raw[i], strings.ReplaceAll(row, "-", ""))
	}
	s := res.Statistics
	assert.Equal(t, length, s.Matches+s.Mismatches+s.Gaps+s.Skipped)
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("one sequence", func(t *testing.T) {
		_, err := RunStrings(ctx, []string{"ACGT"}, DefaultOptions())
		var dm *msa.DegenerateMatrixError
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 1, dm.N)
	})

	t.Run("invalid residue", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Alphabet = DNA
		_, err := RunStrings(ctx, []string{"ACGT", "ACXT"}, opts)
		assert.IsType(t, &sequence.InvalidResidueError{}, err)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := RunStrings(ctx, []string{"ACGT", "ACGT"}, DefaultOptions())
		assert.IsType(t, &sequence.AmbiguousAlphabetError{}, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		opts := DefaultOptions()
		opts.Alphabet = DNA
		_, err := RunStrings(cctx, []string{"ACGT", "ACGT", "ACG"}, opts)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestPairwise(t *testing.T) {
	opts := DefaultOptions()
	opts.Alphabet = DNA

	res, err := Pairwise(Record{ID: "a", Raw: "A"}, Record{ID: "b", Raw: "AA"}, opts, 5)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 2)
	assert.Equal(t, "-A", res.Alignments[0].AlignedA)
	assert.Equal(t, "a", res.Sequences[0].ID)

	res, err = Pairwise(Record{Raw: "ACGT"}, Record{Raw: "ACG"}, opts, 0)
	require.NoError(t, err)
	require.Len(t, res.Alignments, 1)
	assert.Equal(t, "ACG-", res.Alignments[0].AlignedB)
	assert.Equal(t, "seq2", res.Sequences[1].ID)

	_, err = Pairwise(Record{Raw: ""}, Record{Raw: "ACG"}, opts, 1)
	assert.IsType(t, &sequence.EmptySequenceError{}, err)
}

func TestDetectAlphabet(t *testing.T) {
	got, err := DetectAlphabet([]string{"acgu", " ACGU "})
	require.NoError(t, err)
	assert.Equal(t, RNA, got)

	got, err = DetectAlphabet([]string{"MKWV"})
	require.NoError(t, err)
	assert.Equal(t, Protein, got)
}

func TestReadFASTAAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">x\nACGT\n>y\nACG\n"), 0o644))

	records, err := ReadFASTA(path)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Alphabet = DNA
	res, err := Run(context.Background(), records, opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteFASTA(&buf, 60))
	assert.Equal(t, ">x\nACGT\n>y\nACG-\n", buf.String())
}

func TestScore(t *testing.T) {
	opts := DefaultOptions()
	opts.Alphabet = DNA

	score, err := Score(Record{Raw: "ACGT"}, Record{Raw: "ACG"}, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, score)

	_, err = Score(Record{Raw: "ACGT"}, Record{Raw: "ACGU"}, opts)
	assert.IsType(t, &sequence.InvalidResidueError{}, err)
}
