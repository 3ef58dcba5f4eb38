// Package sequence provides DNA/RNA/protein sequence types with validation.
//
// Sequences are uppercased and checked against the residue set of their
// alphabet at construction time; a constructed Sequence is never modified.
package sequence

import (
	"fmt"
	"strings"
)

// Alphabet identifies the residue set a sequence is drawn from.
type Alphabet int

const (
	// Unknown asks for the alphabet to be detected from the input.
	Unknown Alphabet = iota
	// DNA represents a DNA sequence (A, C, G, T)
	DNA
	// RNA represents an RNA sequence (A, C, G, U)
	RNA
	// Protein represents the 20 standard amino acids
	Protein
)

// Alphabets lists the known alphabets in detection order.
var Alphabets = []Alphabet{DNA, RNA, Protein}

var residueSets = map[Alphabet]string{
	DNA:     "ACGT",
	RNA:     "ACGU",
	Protein: "ACDEFGHIKLMNPQRSTVWY",
}

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Protein:
		return "protein"
	default:
		return "unknown"
	}
}

// Residues returns the permitted characters of the alphabet.
func (a Alphabet) Residues() string {
	return residueSets[a]
}

// Contains reports whether c is a residue of the alphabet.
func (a Alphabet) Contains(c rune) bool {
	return c != 0 && strings.ContainsRune(residueSets[a], c)
}

// ParseAlphabet maps a sequence-type tag to an Alphabet. The empty string
// yields Unknown, which requests auto-detection.
func ParseAlphabet(tag string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "":
		return Unknown, nil
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "protein":
		return Protein, nil
	default:
		return Unknown, fmt.Errorf("unknown sequence type %q (want dna, rna or protein)", tag)
	}
}

// Record is a raw, unvalidated input sequence.
type Record struct {
	ID  string
	Raw string
}

// Sequence represents a validated biological sequence.
type Sequence struct {
	ID       string
	Residues string
	Alphabet Alphabet
}

// New creates a sequence over the given alphabet. The residues are
// uppercased before validation; an Unknown alphabet is detected.
func New(id, residues string, alphabet Alphabet) (*Sequence, error) {
	normalized := strings.ToUpper(strings.TrimSpace(residues))

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{Index: -1}
	}

	if alphabet == Unknown {
		detected, err := Detect([]string{normalized})
		if err != nil {
			return nil, err
		}
		alphabet = detected
	}

	if err := Validate([]string{normalized}, alphabet); err != nil {
		return nil, err
	}

	return &Sequence{
		ID:       id,
		Residues: normalized,
		Alphabet: alphabet,
	}, nil
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Residues)
	}
	return s.Residues
}

// Equal checks equality with another sequence.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil {
		return false
	}
	return s.Residues == other.Residues && s.Alphabet == other.Alphabet
}

// Normalize splits whitespace-separated sequences and uppercases them.
func Normalize(input string) []string {
	fields := strings.Fields(input)
	seqs := make([]string, 0, len(fields))
	for _, f := range fields {
		seqs = append(seqs, strings.ToUpper(f))
	}
	return seqs
}

// Label turns bare sequence strings into records named seq1..seqN.
func Label(raw []string) []Record {
	records := make([]Record, len(raw))
	for i, r := range raw {
		records[i] = Record{ID: fmt.Sprintf("seq%d", i+1), Raw: r}
	}
	return records
}

// Prepare uppercases, checks and validates a set of records. If alphabet is
// Unknown it is detected from the residues. Records without an identifier
// are named after their 1-based position.
func Prepare(records []Record, alphabet Alphabet) ([]*Sequence, Alphabet, error) {
	raw := make([]string, len(records))
	ids := make([]string, len(records))
	seen := make(map[string]int, len(records))

	for i, r := range records {
		raw[i] = strings.ToUpper(strings.TrimSpace(r.Raw))
		if len(raw[i]) == 0 {
			return nil, Unknown, &EmptySequenceError{Index: i}
		}

		id := r.ID
		if id == "" {
			id = fmt.Sprintf("seq%d", i+1)
		}
		if j, ok := seen[id]; ok {
			return nil, Unknown, &DuplicateIDError{ID: id, First: j, Second: i}
		}
		seen[id] = i
		ids[i] = id
	}

	if alphabet == Unknown {
		detected, err := Detect(raw)
		if err != nil {
			return nil, Unknown, err
		}
		alphabet = detected
	}

	if err := Validate(raw, alphabet); err != nil {
		return nil, Unknown, err
	}

	seqs := make([]*Sequence, len(records))
	for i := range records {
		seqs[i] = &Sequence{ID: ids[i], Residues: raw[i], Alphabet: alphabet}
	}

	return seqs, alphabet, nil
}
