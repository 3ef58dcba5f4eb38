package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag so values do not leak between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAlignCommand(t *testing.T) {
	dir := t.TempDir()
	matrix := filepath.Join(dir, "scores.csv")

	out, err := execute(t, "align", "ACGT", "AGGT", "ACCT", "--type", "dna", "--format", "fasta", "--matrix", matrix)
	require.NoError(t, err)

	for _, want := range []string{">seq1", "ACGT", ">seq2", "AGGT", ">seq3", "ACCT"} {
		assert.Contains(t, out, want)
	}

	csv, err := os.ReadFile(matrix)
	require.NoError(t, err)
	assert.Equal(t, "0,2,2\n2,0,0\n2,0,0\n", string(csv))
}

func TestAlignCommandFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.fasta")
	output := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(input, []byte(">x\nACGT\n>y\nACT\n>z\nACGT\n"), 0o644))

	_, err := execute(t, "align", "--file", input, "--type", "dna", "--format", "text", "--output", output)
	require.NoError(t, err)

	report, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(report), "Center sequence: x")
	assert.Contains(t, string(report), "AC-T")
}

func TestAlignCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "single sequence", args: []string{"align", "ACGT", "--type", "dna"}},
		{name: "invalid residue", args: []string{"align", "ACGT", "ACGX", "--type", "dna"}},
		{name: "bad tie-break", args: []string{"align", "ACGT", "ACG", "--type", "dna", "--tie-break", "up"}},
		{name: "missing file", args: []string{"align", "--file", "does-not-exist.fasta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestDetectCommand(t *testing.T) {
	out, err := execute(t, "detect", "ACGU", "acgu")
	require.NoError(t, err)
	assert.Equal(t, "rna\n", out)

	_, err = execute(t, "detect", "ACGT")
	assert.Error(t, err)
}

func TestSettingsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "centerstar.yaml")

	out, err := execute(t, "settings", path)
	require.NoError(t, err)
	assert.Contains(t, out, "settings written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tie-break: diagonal,up,left")
}
