package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aria-lang/centerstar-go/internal/render"
	"github.com/aria-lang/centerstar-go/internal/report"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// alignCmd builds a center-star multiple alignment.
var alignCmd = &cobra.Command{
	Use:   "align [sequences...]",
	Short: "Build a multiple alignment around the center sequence",
	Long: `Score every pair of sequences, pick the sequence with the lowest total
distance to all others as the center, align each remaining sequence to it
and merge the pairs into one multiple alignment.`,
	Example: `  centerstar align ACGT AGGT ACCT
  centerstar align -f input.fasta --format fasta -o aligned.fasta
  centerstar align -f input.fasta --matrix scores.csv --png alignment.png`,
	RunE: runAlign,
}

func init() {
	addInputFlags(alignCmd)
	flags := alignCmd.Flags()
	flags.String("format", "text", "output format: "+joinFormats())
	flags.Int("columns", 60, "wrap FASTA output at this column, 0 disables wrapping")
	flags.String("matrix", "", "write the pairwise score matrix as CSV to this file")
	flags.String("png", "", "write a colored block view of the alignment to this file")

	settings.BindPFlag("output.format", flags.Lookup("format"))
	settings.BindPFlag("output.columns", flags.Lookup("columns"))

	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	c, opts, err := loadConfig()
	if err != nil {
		return err
	}

	records, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res, err := centerstar.Run(cmd.Context(), records, opts)
	if err != nil {
		return err
	}

	w, closeOut, err := output(cmd)
	if err != nil {
		return err
	}

	switch c.Output.Format {
	case "json":
		err = report.WriteJSON(w, report.NewDocument(res))
	case "fasta":
		err = res.WriteFASTA(w, c.Output.Columns)
	default:
		err = report.WriteText(w, res)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing alignment: %w", err)
	}

	if path, _ := cmd.Flags().GetString("matrix"); path != "" {
		if err := writeFile(path, func(f *os.File) error {
			return report.WriteMatrix(f, res.Scores.Rows())
		}); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString("png"); path != "" {
		if err := writeFile(path, func(f *os.File) error {
			return render.WritePNG(f, res.IDs(), res.Alignment.Rows)
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
