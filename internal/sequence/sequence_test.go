package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		residues string
		alphabet Alphabet
		wantErr  bool
		errType  interface{}
	}{
		{
			name:     "valid DNA sequence",
			residues: "ACGTACGT",
			alphabet: DNA,
		},
		{
			name:     "valid DNA with lowercase",
			residues: "acgtacgt",
			alphabet: DNA,
		},
		{
			name:     "valid protein",
			residues: "MKVLWAALLV",
			alphabet: Protein,
		},
		{
			name:     "detected RNA",
			residues: "ACGU",
			alphabet: Unknown,
		},
		{
			name:     "empty sequence",
			residues: "",
			alphabet: DNA,
			wantErr:  true,
			errType:  &EmptySequenceError{},
		},
		{
			name:     "U in DNA",
			residues: "ACGU",
			alphabet: DNA,
			wantErr:  true,
			errType:  &InvalidResidueError{},
		},
		{
			name:     "N is not a residue",
			residues: "ACGNT",
			alphabet: DNA,
			wantErr:  true,
			errType:  &InvalidResidueError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New("s", tt.residues, tt.alphabet)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					assert.IsType(t, tt.errType, err)
				}
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, seq)
			assert.Equal(t, len(tt.residues), seq.Len())
			assert.NotEqual(t, Unknown, seq.Alphabet)
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		seqs        []string
		want        Alphabet
		ambiguous   []Alphabet
		unsupported bool
	}{
		{name: "RNA with U and no T", seqs: []string{"ACGU", "ACGU"}, want: RNA},
		{name: "protein letters", seqs: []string{"MKWV", "ACDE"}, want: Protein},
		{name: "DNA also fits protein", seqs: []string{"ACGT", "AGGT"}, ambiguous: []Alphabet{DNA, Protein}},
		{name: "ACG fits everything", seqs: []string{"ACG"}, ambiguous: []Alphabet{DNA, RNA, Protein}},
		{name: "T and U together", seqs: []string{"ACGT", "ACGU"}, unsupported: true},
		{name: "digits", seqs: []string{"AC1T"}, unsupported: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.seqs)

			switch {
			case tt.ambiguous != nil:
				var amb *AmbiguousAlphabetError
				require.True(t, errors.As(err, &amb))
				assert.Equal(t, tt.ambiguous, amb.Candidates)
			case tt.unsupported:
				assert.IsType(t, &UnsupportedAlphabetError{}, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	err := Validate([]string{"ACGT", "ACXZT", "ACGT"}, DNA)
	require.Error(t, err)

	var inv *InvalidResidueError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, 1, inv.Index)
	assert.Equal(t, []rune{'X', 'Z'}, inv.Chars)
	assert.Contains(t, err.Error(), "sequence 2")
	assert.Contains(t, err.Error(), "DNA")

	assert.NoError(t, Validate([]string{"ACGT", "TTTT"}, DNA))
	assert.IsType(t, &UnsupportedAlphabetError{}, Validate([]string{"ACGT"}, Unknown))
}

func TestParseAlphabet(t *testing.T) {
	tests := []struct {
		tag     string
		want    Alphabet
		wantErr bool
	}{
		{"", Unknown, false},
		{"dna", DNA, false},
		{"RNA", RNA, false},
		{" protein ", Protein, false},
		{"peptide", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseAlphabet(tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("  acgt AGGT\n\tacct  ")
	assert.Equal(t, []string{"ACGT", "AGGT", "ACCT"}, got)
	assert.Empty(t, Normalize("   "))
}

func TestLabel(t *testing.T) {
	records := Label([]string{"ACGT", "AGGT"})
	require.Len(t, records, 2)
	assert.Equal(t, Record{ID: "seq1", Raw: "ACGT"}, records[0])
	assert.Equal(t, Record{ID: "seq2", Raw: "AGGT"}, records[1])
}

func TestPrepare(t *testing.T) {
	t.Run("explicit alphabet", func(t *testing.T) {
		seqs, alpha, err := Prepare([]Record{{ID: "a", Raw: "acgt"}, {Raw: "AGGT"}}, DNA)
		require.NoError(t, err)
		assert.Equal(t, DNA, alpha)
		require.Len(t, seqs, 2)
		assert.Equal(t, "ACGT", seqs[0].Residues)
		assert.Equal(t, "a", seqs[0].ID)
		assert.Equal(t, "seq2", seqs[1].ID)
	})

	t.Run("detected alphabet", func(t *testing.T) {
		_, alpha, err := Prepare(Label([]string{"ACGU", "ACGU"}), Unknown)
		require.NoError(t, err)
		assert.Equal(t, RNA, alpha)
	})

	t.Run("empty record", func(t *testing.T) {
		_, _, err := Prepare(Label([]string{"ACGT", "  "}), DNA)
		var empty *EmptySequenceError
		require.True(t, errors.As(err, &empty))
		assert.Equal(t, 1, empty.Index)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, _, err := Prepare([]Record{{ID: "x", Raw: "ACGT"}, {ID: "x", Raw: "ACGT"}}, DNA)
		assert.IsType(t, &DuplicateIDError{}, err)
	})

	t.Run("invalid residue", func(t *testing.T) {
		_, _, err := Prepare(Label([]string{"ACGT", "ACGU"}), DNA)
		assert.IsType(t, &InvalidResidueError{}, err)
	})
}

func TestSequenceErrorsImplementMarker(t *testing.T) {
	errs := []error{
		&EmptySequenceError{},
		&InvalidResidueError{},
		&AmbiguousAlphabetError{},
		&UnsupportedAlphabetError{},
		&DuplicateIDError{},
	}
	for _, err := range errs {
		_, ok := err.(SequenceError)
		assert.True(t, ok, "%T", err)
	}
}
