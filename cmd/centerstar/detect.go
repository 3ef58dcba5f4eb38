package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/centerstar-go/internal/fastaio"
	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/aria-lang/centerstar-go/internal/stats"
)

// detectCmd reports the alphabet of the input.
var detectCmd = &cobra.Command{
	Use:     "detect [sequences...]",
	Short:   "Report the sequence type of the input",
	Example: "  centerstar detect -f input.fasta",
	RunE:    runDetect,
}

// normalizeCmd validates the input and writes it back as FASTA.
var normalizeCmd = &cobra.Command{
	Use:   "normalize [sequences...]",
	Short: "Validate the input and write it back as uppercase FASTA",
	Long: `Uppercase and validate the input sequences against the given or detected
sequence type, name unnamed sequences seq1..seqN and write them as FASTA.
Length statistics of the set are logged with --verbose.`,
	Example: "  echo 'acgt aggt' | centerstar normalize -o clean.fasta",
	RunE:    runNormalize,
}

func init() {
	addInputFlags(detectCmd)
	addInputFlags(normalizeCmd)
	normalizeCmd.Flags().Int("columns", 60, "wrap sequences at this column, 0 disables wrapping")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(normalizeCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	records, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	seqs, alphabet, err := sequence.Prepare(records, sequence.Unknown)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), alphabet)
	if settings.GetBool("verbose") {
		if summary, err := stats.FromSequences(seqs); err == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), summary)
		}
	}
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	_, opts, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	seqs, _, err := sequence.Prepare(records, opts.Alphabet)
	if err != nil {
		return err
	}

	if opts.Verbose {
		if summary, err := stats.FromSequences(seqs); err == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), summary)
		}
	}

	clean := make([]sequence.Record, len(seqs))
	for i, s := range seqs {
		clean[i] = sequence.Record{ID: s.ID, Raw: s.Residues}
	}

	w, closeOut, err := output(cmd)
	if err != nil {
		return err
	}
	columns, _ := cmd.Flags().GetInt("columns")
	err = fastaio.WriteRecords(w, clean, columns)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}
