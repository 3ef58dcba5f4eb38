// Command centerstar aligns DNA, RNA or protein sequences with the
// center-star method.
//
// Usage:
//
//	centerstar [command] [flags]
//
// Commands:
//
//	align       Build a multiple alignment around the center sequence
//	pairwise    Align two sequences and list co-optimal alignments
//	detect      Report the sequence type of the input
//	normalize   Validate the input and write it back as FASTA
//	settings    Write the effective settings to a file
package main

func main() {
	Execute()
}
