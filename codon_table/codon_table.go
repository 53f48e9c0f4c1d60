// Package codon_table loads non-standard codon tables. Start and stop codons
// are read from the table's own annotations rather than assumed.
//
// File format, one record per line:
//
//	GGT G        plain amino acid
//	ATG M:start  the start codon, translated as M inside an ORF
//	TAA *        stop codon; "_", "Stop", "End" and "X:stop" also work
//
// Blank lines and lines beginning with '#' are ignored.
package codon_table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("codon_table")

// MalformedTableError reports a table line (or whole table, Line == 0) that
// cannot be used.
type MalformedTableError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedTableError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed codon table: %s", e.Reason)
	}
	return fmt.Sprintf("malformed codon table line %d (%q): %s", e.Line, e.Text, e.Reason)
}

type kind int

const (
	aminoAcid kind = iota
	startCodon
	stopCodon
)

type entry struct {
	symbol string
	kind   kind
}

// Table maps codons to amino-acid symbols and knows the start and stop codons.
// A Table is immutable once loaded.
type Table struct {
	entries map[string]entry
	start   string
}

// Load reads a codon table from file.
func Load(file string) (*Table, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open codon table: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	log.Debugf("Loaded %d codons from %s (start %s, stops %v)", t.Len(), file, t.start, t.StopCodons())
	return t, nil
}

// Parse reads a codon table from r.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{entries: make(map[string]entry)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &MalformedTableError{Line: lineNum, Text: line,
				Reason: fmt.Sprintf("expected 2 fields, got %d", len(fields))}
		}

		codon := normalizeCodon(fields[0])
		if !validCodon(codon) {
			return nil, &MalformedTableError{Line: lineNum, Text: line, Reason: "codon must be three nucleotides"}
		}

		e, err := parseSymbol(fields[1])
		if err != nil {
			return nil, &MalformedTableError{Line: lineNum, Text: line, Reason: err.Error()}
		}

		// Last write wins
		if prev, dup := t.entries[codon]; dup {
			log.Warningf("Codon %s redefined on line %d (%s -> %s)", codon, lineNum, prev.symbol, e.symbol)
		}
		t.entries[codon] = e
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	var starts []string
	for codon, e := range t.entries {
		if e.kind == startCodon {
			starts = append(starts, codon)
		}
	}
	switch len(starts) {
	case 1:
		t.start = starts[0]
	case 0:
		return nil, &MalformedTableError{Reason: "no start codon annotated"}
	default:
		sort.Strings(starts)
		return nil, &MalformedTableError{Reason: fmt.Sprintf("more than one start codon annotated: %s", strings.Join(starts, ", "))}
	}
	return t, nil
}

func parseSymbol(tok string) (entry, error) {
	symbol, annotation, annotated := strings.Cut(tok, ":")
	if annotated {
		switch strings.ToLower(annotation) {
		case "start":
			if symbol == "" {
				return entry{}, fmt.Errorf("start codon needs an amino-acid symbol")
			}
			return entry{symbol: symbol, kind: startCodon}, nil
		case "stop":
			return entry{symbol: symbol, kind: stopCodon}, nil
		default:
			return entry{}, fmt.Errorf("unknown annotation %q", annotation)
		}
	}

	switch strings.ToLower(symbol) {
	case "*", "_", "stop", "end":
		return entry{symbol: symbol, kind: stopCodon}, nil
	case "start":
		return entry{}, fmt.Errorf("start codon needs an amino-acid symbol, e.g. M:start")
	}
	return entry{symbol: symbol, kind: aminoAcid}, nil
}

func normalizeCodon(s string) string {
	return strings.ReplaceAll(strings.ToUpper(s), "U", "T")
}

func validCodon(codon string) bool {
	if len(codon) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if codon[i] < 'A' || codon[i] > 'Z' {
			return false
		}
	}
	return true
}

// Translate returns the amino-acid symbol for codon. Stop codons and codons
// missing from the table report false.
func (t *Table) Translate(codon string) (string, bool) {
	e, ok := t.entries[codon]
	if !ok || e.kind == stopCodon {
		return "", false
	}
	return e.symbol, true
}

func (t *Table) IsStart(codon string) bool { return codon == t.start }

func (t *Table) IsStop(codon string) bool {
	e, ok := t.entries[codon]
	return ok && e.kind == stopCodon
}

// Known reports whether codon has any entry in the table.
func (t *Table) Known(codon string) bool {
	_, ok := t.entries[codon]
	return ok
}

func (t *Table) StartCodon() string { return t.start }

// StopCodons returns the stop codons in sorted order.
func (t *Table) StopCodons() []string {
	var stops []string
	for codon, e := range t.entries {
		if e.kind == stopCodon {
			stops = append(stops, codon)
		}
	}
	sort.Strings(stops)
	return stops
}

// Len is the number of codons in the table.
func (t *Table) Len() int { return len(t.entries) }
