// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReverseComplement takes a DNA sequence string and returns its reverse complement.
// The function is case-insensitive. Non-standard DNA characters are replaced with
// the ambiguous base 'N'.
func ReverseComplement(seq string) string {
	var rc strings.Builder
	rc.Grow(len(seq))
	// Case insensativity
	seq = strings.ToUpper(seq)
	for i := len(seq) - 1; i >= 0; i-- {
		switch seq[i] {
		case 'A':
			rc.WriteByte('T')
		case 'T', 'U':
			rc.WriteByte('A')
		case 'C':
			rc.WriteByte('G')
		case 'G':
			rc.WriteByte('C')
		default:
			rc.WriteByte('N') // Ambiguous or invalid character
		}
	}
	return rc.String()
}

// openMaybeGzip opens file and transparently decompresses it when it starts
// with the gzip magic bytes. The returned closer releases every layer.
func openMaybeGzip(file string) (io.Reader, func(), error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	buf := make([]byte, 2)
	if n, _ := io.ReadFull(f, buf); n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("failed to rewind file: %w", err)
		}
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gr, func() { gr.Close(); f.Close() }, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to rewind file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// ReadLines returns every line of file with surrounding white space removed.
// Blank lines are kept so the result is a permutation-safe copy of the file.
func ReadLines(file string) ([]string, error) {
	reader, closeFn, err := openMaybeGzip(file)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var lines []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return lines, nil
}

// ReadSequence reads a single nucleotide sequence spread over any number of
// lines. White space is dropped, letters are upper-cased, U is read as T and
// FASTA header lines ('>') are skipped.
func ReadSequence(file string) (string, error) {
	lines, err := ReadLines(file)
	if err != nil {
		return "", err
	}
	var seq strings.Builder
	for _, line := range lines {
		if strings.HasPrefix(line, ">") {
			continue
		}
		seq.WriteString(NormalizeSequence(line))
	}
	return seq.String(), nil
}

// NormalizeSequence removes white space, upper-cases and maps U to T.
func NormalizeSequence(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return -1
		case r == 'u' || r == 'U':
			return 'T'
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return r
	}, s)
}
