package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aria-lang/centerstar-go/internal/config"
	"github.com/aria-lang/centerstar-go/internal/sequence"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// settings holds defaults, the environment, an optional settings file and
// the command line flags, in increasing priority.
var settings = config.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "centerstar",
	Short: "Multiple sequence alignment with the center-star method",
	Long: `Align DNA, RNA or protein sequences around the sequence closest to
all others, using Needleman-Wunsch global alignment with linear gaps.

Sequences are read from a FASTA file (--file), from the arguments, or as
whitespace-separated sequences on stdin.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if path := settings.GetString("settings"); path != "" {
			return config.ReadSettings(settings, path)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("centerstar: ")

	flags := rootCmd.PersistentFlags()
	flags.StringP("settings", "s", "", "settings file (yaml, json or toml)")
	flags.BoolP("verbose", "v", false, "log stage timings to stderr")
	flags.StringP("type", "t", "", "sequence type: dna, rna or protein (detected when empty)")
	flags.Int("match", 1, "score for identical residues")
	flags.Int("mismatch", -1, "score for differing residues")
	flags.Int("gap", -2, "penalty per gap column")
	flags.String("tie-break", "diagonal,up,left", "traceback order among equally scoring moves")

	bindFlags(flags, "settings", "verbose", "type", "match", "mismatch", "gap", "tie-break")
}

// bindFlags lets each named flag override the setting of the same key.
func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if err := settings.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Fatalf("binding flag %s: %v", name, err)
		}
	}
}

// loadConfig decodes and validates the merged settings.
func loadConfig() (config.Config, centerstar.Options, error) {
	c, err := config.Load(settings)
	if err != nil {
		return config.Config{}, centerstar.Options{}, err
	}
	opts, err := c.Options()
	if err != nil {
		return config.Config{}, centerstar.Options{}, err
	}
	return c, opts, nil
}

// readInput collects the records named by --file, the arguments or stdin.
func readInput(cmd *cobra.Command, args []string) ([]centerstar.Record, error) {
	file, _ := cmd.Flags().GetString("file")
	switch {
	case file != "" && len(args) > 0:
		return nil, fmt.Errorf("give either --file or sequence arguments, not both")
	case file != "":
		return centerstar.ReadFASTA(file)
	case len(args) > 0:
		return sequence.Label(args), nil
	}

	raw, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return sequence.Label(sequence.Normalize(string(raw))), nil
}

// output returns the writer named by --output, or stdout. The returned
// function closes it.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// addInputFlags registers the input and output flags shared by commands.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "FASTA file with the input sequences")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
}

func joinFormats() string {
	return strings.Join(config.Formats, ", ")
}
