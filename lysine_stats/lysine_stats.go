// Package lysine_stats computes lysine (K) composition statistics over files
// holding one protein sequence per line. Blank lines are not sequences and are
// skipped.
package lysine_stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"seq_exam_go/utils"
)

var log = logging.MustGetLogger("lysine_stats")

// ErrEmptySequence is returned when there is no sequence to compute over.
var ErrEmptySequence = errors.New("no sequences to compute lysine statistics")

const lysine = "K"

// CountLysine counts upper-case K residues in seq.
func CountLysine(seq string) int {
	return strings.Count(seq, lysine)
}

// ReadSequences returns the non-blank, trimmed lines of file.
func ReadSequences(file string) ([]string, error) {
	lines, err := common.ReadLines(file)
	if err != nil {
		return nil, err
	}
	seqs := lines[:0]
	skipped := 0
	for _, line := range lines {
		if line == "" {
			skipped++
			continue
		}
		seqs = append(seqs, line)
	}
	if skipped > 0 {
		log.Debugf("Skipped %d blank lines in %s", skipped, file)
	}
	return seqs, nil
}

// LysineCounts returns the number of lysines of every sequence in file, in
// file order.
func LysineCounts(file string) ([]int, error) {
	seqs, err := ReadSequences(file)
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(seqs))
	for i, seq := range seqs {
		counts[i] = CountLysine(seq)
	}
	return counts, nil
}

// Percentages returns the lysine percentage of each sequence.
func Percentages(seqs []string) ([]float64, error) {
	percents := make([]float64, len(seqs))
	for i, seq := range seqs {
		if len(seq) == 0 {
			return nil, fmt.Errorf("sequence %d: %w", i+1, ErrEmptySequence)
		}
		percents[i] = float64(CountLysine(seq)) / float64(len(seq)) * 100
	}
	return percents, nil
}

// TopLysineOf returns the highest lysine percentage among seqs and the
// sequence carrying it. Ties go to the earliest sequence.
func TopLysineOf(seqs []string) (float64, string, error) {
	if len(seqs) == 0 {
		return 0, "", ErrEmptySequence
	}
	percents, err := Percentages(seqs)
	if err != nil {
		return 0, "", err
	}
	idx := floats.MaxIdx(percents)
	return percents[idx], seqs[idx], nil
}

// TopLysine is TopLysineOf over the sequences of file.
func TopLysine(file string) (float64, string, error) {
	seqs, err := ReadSequences(file)
	if err != nil {
		return 0, "", err
	}
	return TopLysineOf(seqs)
}

// AvgLysineOf returns the median and mean of counts.
func AvgLysineOf(counts []int) (median, mean float64, err error) {
	if len(counts) == 0 {
		return 0, 0, ErrEmptySequence
	}
	vals := make([]float64, len(counts))
	for i, c := range counts {
		vals[i] = float64(c)
	}
	return Median(vals), stat.Mean(vals, nil), nil
}

// AvgLysine returns the median and mean lysine count over every sequence of
// file.
func AvgLysine(file string) (median, mean float64, err error) {
	counts, err := LysineCounts(file)
	if err != nil {
		return 0, 0, err
	}
	return AvgLysineOf(counts)
}

// Median returns the middle value of vals, averaging the two middle values
// for even lengths. vals is not modified.
func Median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
