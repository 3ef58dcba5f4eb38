package fastaio

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `>seq1 first sequence
ACGT
acgt

>seq2
AGGT
>seq3
ACCT
`
	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []sequence.Record{
		{ID: "seq1", Raw: "ACGTACGT"},
		{ID: "seq2", Raw: "AGGT"},
		{ID: "seq3", Raw: "ACCT"},
	}, records)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank lines", "\n\n  \n"},
		{"no header", "ACGT\nACGT\n"},
		{"invalid character", ">s\nAC1T\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}

	_, err := Parse(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoSequences))
}

func TestParseHeaderOnly(t *testing.T) {
	records, err := Parse(strings.NewReader(">a\nACGT\n>b\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "", records[1].Raw)

	_, _, err = sequence.Prepare(records, sequence.DNA)
	assert.IsType(t, &sequence.EmptySequenceError{}, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "input.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">x\nACGU\n>y\nACGU\n"), 0o644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "x", records[0].ID)

	empty := filepath.Join(dir, "empty.fasta")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = ReadFile(empty)
	assert.True(t, errors.Is(err, ErrNoSequences))

	_, err = ReadFile(filepath.Join(dir, "missing.fasta"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "FASTA file not found")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []string{"a", "b"}, []string{"AC-GT", "ACTGT"}, 0)
	require.NoError(t, err)
	assert.Equal(t, ">a\nAC-GT\n>b\nACTGT\n", buf.String())

	buf.Reset()
	err = Write(&buf, []string{"a"}, []string{"ACGTAC"}, 4)
	require.NoError(t, err)
	assert.Equal(t, ">a\nACGT\nAC\n", buf.String())

	err = Write(&buf, []string{"a"}, nil, 0)
	require.Error(t, err)

	err = Write(&buf, []string{"a", "b"}, []string{"ACGT", "ACG"}, 0)
	require.Error(t, err)
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecords(&buf, []sequence.Record{{ID: "a", Raw: "ACGT"}, {ID: "b", Raw: "AC"}}, 60)
	require.NoError(t, err)
	assert.Equal(t, ">a\nACGT\n>b\nAC\n", buf.String())
}

func TestWriteThenParse(t *testing.T) {
	var buf bytes.Buffer
	rows := []string{"AC-T", "ACGT"}
	require.NoError(t, Write(&buf, []string{"r1", "r2"}, rows, 60))

	records, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows[0], records[0].Raw)
	assert.Equal(t, rows[1], records[1].Raw)
}
