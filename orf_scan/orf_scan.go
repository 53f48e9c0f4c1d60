package orf_scan

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"seq_exam_go/codon_table"
	"seq_exam_go/utils"
)

var log = logging.MustGetLogger("orf_scan")

// ORF is a complete open reading frame: start codon through stop codon.
type ORF struct {
	Frame   int    // 0, 1 or 2
	Start   int    // offset of the start codon
	End     int    // offset just past the stop codon
	Peptide string // translated residues, stop codon excluded
}

// Length is the ORF length in nucleotides, start and stop codons included.
func (o ORF) Length() int {
	return o.End - o.Start
}

// UnknownCodonError is returned when a codon inside an ORF has no table entry.
type UnknownCodonError struct {
	Codon string
	Pos   int
	Frame int
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("unknown codon %q at position %d (frame %d)", e.Codon, e.Pos, e.Frame)
}

// Scanner finds ORFs using a codon table.
type Scanner struct {
	Table *codon_table.Table

	// IncludeStart emits the start codon's own residue as the first residue
	// of each peptide. Off by default: the start codon only opens the ORF.
	IncludeStart bool
}

func NewScanner(table *codon_table.Table) *Scanner {
	return &Scanner{Table: table}
}

// Frame scans one reading frame. Outside an ORF, codons are skipped until the
// start codon. Inside, codons are translated until a stop codon closes the
// ORF. An ORF still open at the end of seq is dropped.
func (s *Scanner) Frame(seq string, frame int) ([]ORF, error) {
	if frame < 0 || frame > 2 {
		return nil, fmt.Errorf("invalid reading frame %d (choose 0, 1 or 2)", frame)
	}

	var orfs []ORF
	var peptide strings.Builder
	inside := false
	start := 0

	for i := frame; i+3 <= len(seq); i += 3 {
		codon := seq[i : i+3]

		if !inside {
			if s.Table.IsStart(codon) {
				inside = true
				start = i
				peptide.Reset()
				if s.IncludeStart {
					aa, _ := s.Table.Translate(codon)
					peptide.WriteString(aa)
				}
			}
			continue
		}

		if s.Table.IsStop(codon) {
			orfs = append(orfs, ORF{Frame: frame, Start: start, End: i + 3, Peptide: peptide.String()})
			inside = false
			continue
		}

		aa, ok := s.Table.Translate(codon)
		if !ok {
			return nil, &UnknownCodonError{Codon: codon, Pos: i, Frame: frame}
		}
		peptide.WriteString(aa)
	}

	if inside {
		log.Debugf("Frame %d: discarding ORF opened at %d with no stop codon", frame, start)
	}
	return orfs, nil
}

// Frames scans frames 0, 1 and 2 independently and returns their ORFs in
// frame order.
func (s *Scanner) Frames(seq string) ([]ORF, error) {
	var all []ORF
	for frame := 0; frame < 3; frame++ {
		orfs, err := s.Frame(seq, frame)
		if err != nil {
			return nil, err
		}
		all = append(all, orfs...)
	}
	return all, nil
}

// Longest returns the nucleotide length of the longest ORF over all three
// frames, or 0 when there is none.
func (s *Scanner) Longest(seq string) (int, error) {
	orfs, err := s.Frames(seq)
	if err != nil {
		return 0, err
	}
	longest := 0
	for _, orf := range orfs {
		if orf.Length() > longest {
			longest = orf.Length()
		}
	}
	return longest, nil
}

// TranslateDNA returns the peptides of every complete frame-0 ORF in seq, in
// order of appearance.
func TranslateDNA(table *codon_table.Table, seq string) ([]string, error) {
	orfs, err := NewScanner(table).Frame(seq, 0)
	if err != nil {
		return nil, err
	}
	peptides := make([]string, 0, len(orfs))
	for _, orf := range orfs {
		peptides = append(peptides, orf.Peptide)
	}
	return peptides, nil
}

// LongestTranslatable returns the length in nucleotides of the longest ORF in
// any of the three forward frames.
func LongestTranslatable(table *codon_table.Table, seq string) (int, error) {
	return NewScanner(table).Longest(seq)
}

// load reads the codon table and DNA sequence for the file based entry points.
func load(codonsFile, dnaFile string) (*codon_table.Table, string, error) {
	table, err := codon_table.Load(codonsFile)
	if err != nil {
		return nil, "", err
	}
	seq, err := common.ReadSequence(dnaFile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read DNA: %w", err)
	}
	log.Debugf("Read %d nt from %s", len(seq), dnaFile)
	return table, seq, nil
}

// TranslateDNAFile is TranslateDNA over a codon table file and a DNA file.
func TranslateDNAFile(codonsFile, dnaFile string) ([]string, error) {
	table, seq, err := load(codonsFile, dnaFile)
	if err != nil {
		return nil, err
	}
	return TranslateDNA(table, seq)
}

// LongestTranslatableFile is LongestTranslatable over a codon table file and
// a DNA file.
func LongestTranslatableFile(codonsFile, dnaFile string) (int, error) {
	table, seq, err := load(codonsFile, dnaFile)
	if err != nil {
		return 0, err
	}
	return LongestTranslatable(table, seq)
}
