package sequence

import (
	"fmt"
	"sort"
	"strings"
)

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence has no residues.
// Index is the 0-based position in the input, or -1 when unknown.
type EmptySequenceError struct {
	Index int
}

func (e *EmptySequenceError) Error() string {
	if e.Index < 0 {
		return "sequence must have at least one residue"
	}
	return fmt.Sprintf("sequence %d must have at least one residue", e.Index+1)
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidResidueError is returned when a sequence contains characters
// outside its alphabet. Index is 0-based; Chars is sorted.
type InvalidResidueError struct {
	Index    int
	Chars    []rune
	Alphabet Alphabet
}

func (e *InvalidResidueError) Error() string {
	quoted := make([]string, len(e.Chars))
	for i, c := range e.Chars {
		quoted[i] = fmt.Sprintf("'%c'", c)
	}
	return fmt.Sprintf("sequence %d contains invalid characters for %s: %s",
		e.Index+1, strings.ToUpper(e.Alphabet.String()), strings.Join(quoted, ", "))
}

func (e *InvalidResidueError) IsSequenceError() {}

// AmbiguousAlphabetError is returned when more than one alphabet fits.
type AmbiguousAlphabetError struct {
	Candidates []Alphabet
}

func (e *AmbiguousAlphabetError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, a := range e.Candidates {
		names[i] = a.String()
	}
	return fmt.Sprintf("ambiguous sequence type detected: matches %s", strings.Join(names, ", "))
}

func (e *AmbiguousAlphabetError) IsSequenceError() {}

// UnsupportedAlphabetError is returned when no known alphabet fits.
type UnsupportedAlphabetError struct{}

func (e *UnsupportedAlphabetError) Error() string {
	return "sequences contain invalid characters for all known types"
}

func (e *UnsupportedAlphabetError) IsSequenceError() {}

// DuplicateIDError is returned when two records share an identifier.
type DuplicateIDError struct {
	ID     string
	First  int
	Second int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate sequence id %q (sequences %d and %d)", e.ID, e.First+1, e.Second+1)
}

func (e *DuplicateIDError) IsSequenceError() {}

// Detect returns the unique alphabet whose residue set covers every
// character of every sequence.
func Detect(seqs []string) (Alphabet, error) {
	candidates := make([]Alphabet, 0, len(Alphabets))

	for _, a := range Alphabets {
		fits := true
		for _, s := range seqs {
			if len(invalidChars(s, a)) > 0 {
				fits = false
				break
			}
		}
		if fits {
			candidates = append(candidates, a)
		}
	}

	switch len(candidates) {
	case 0:
		return Unknown, &UnsupportedAlphabetError{}
	case 1:
		return candidates[0], nil
	default:
		return Unknown, &AmbiguousAlphabetError{Candidates: candidates}
	}
}

// Validate checks every sequence against the alphabet. Sequences are
// expected to be uppercased already.
func Validate(seqs []string, alphabet Alphabet) error {
	if alphabet == Unknown {
		return &UnsupportedAlphabetError{}
	}

	for i, s := range seqs {
		if bad := invalidChars(s, alphabet); len(bad) > 0 {
			return &InvalidResidueError{Index: i, Chars: bad, Alphabet: alphabet}
		}
	}
	return nil
}

// invalidChars returns the distinct characters of s outside the alphabet.
func invalidChars(s string, alphabet Alphabet) []rune {
	var bad []rune
	seen := make(map[rune]bool)

	for _, c := range s {
		if !alphabet.Contains(c) && !seen[c] {
			seen[c] = true
			bad = append(bad, c)
		}
	}

	sort.Slice(bad, func(i, j int) bool { return bad[i] < bad[j] })
	return bad
}
