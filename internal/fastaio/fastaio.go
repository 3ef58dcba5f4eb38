// Package fastaio reads input sequences from FASTA and writes alignments as
// aligned FASTA.
package fastaio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/edsrzf/mmap-go"

	"github.com/aria-lang/centerstar-go/internal/sequence"
)

// ErrNoSequences is returned when the input holds no FASTA entry.
var ErrNoSequences = errors.New("no sequences found in FASTA input")

// ReadFile maps the file into memory and parses it.
func ReadFile(path string) ([]sequence.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("FASTA file not found: %s: %w", path, err)
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, ErrNoSequences
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	defer mm.Unmap()

	return Parse(bytes.NewReader(mm))
}

// Parse reads every entry from r. The record ID is the first word of the
// header line; sequence lines are concatenated and uppercased.
func Parse(r io.Reader) ([]sequence.Record, error) {
	entries, err := fasta.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading FASTA input: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoSequences
	}

	records := make([]sequence.Record, len(entries))
	for i, e := range entries {
		id := ""
		if fields := strings.Fields(e.Header); len(fields) > 0 {
			id = fields[0]
		}
		records[i] = sequence.Record{ID: id, Raw: string(e.Sequence)}
	}
	return records, nil
}

// Write emits one aligned FASTA entry per row, wrapping sequences at
// columns characters. A columns value <= 0 disables wrapping. Rows of
// differing length are rejected.
func Write(w io.Writer, ids, rows []string, columns int) error {
	if len(ids) != len(rows) {
		return fmt.Errorf("got %d identifiers for %d rows", len(ids), len(rows))
	}

	entries := make([]fasta.Entry, len(rows))
	for i, row := range rows {
		entries[i] = fasta.Entry{Header: ids[i], Sequence: []byte(row)}
	}

	fw := fasta.NewAlignedWriter(w)
	fw.Columns = columns
	return fw.WriteAll(entries)
}

// WriteRecords emits unaligned records as plain FASTA.
func WriteRecords(w io.Writer, records []sequence.Record, columns int) error {
	entries := make([]fasta.Entry, len(records))
	for i, r := range records {
		entries[i] = fasta.Entry{Header: r.ID, Sequence: []byte(r.Raw)}
	}

	fw := fasta.NewWriter(w)
	fw.Columns = columns
	return fw.WriteAll(entries)
}
