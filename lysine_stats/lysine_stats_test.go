package lysine_stats

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeqs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "multi_seqs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTopLysine(t *testing.T) {
	path := writeSeqs(t, "KKKA\nAAAA\n")
	percent, seq, err := TopLysine(path)
	require.NoError(t, err)
	assert.Equal(t, 75.0, percent)
	assert.Equal(t, "KKKA", seq)
}

func TestTopLysineFirstMaximumWins(t *testing.T) {
	percent, seq, err := TopLysineOf([]string{"AK", "KA", "AAAA"})
	require.NoError(t, err)
	assert.Equal(t, 50.0, percent)
	assert.Equal(t, "AK", seq)
}

func TestTopLysineSkipsBlankLines(t *testing.T) {
	path := writeSeqs(t, "\nAAAK\n   \nAKKK\n\n")
	percent, seq, err := TopLysine(path)
	require.NoError(t, err)
	assert.Equal(t, 75.0, percent)
	assert.Equal(t, "AKKK", seq)
}

func TestTopLysineLowerCaseIsNotLysine(t *testing.T) {
	percent, _, err := TopLysineOf([]string{"kkkk"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)
}

func TestAvgLysineUsesEveryLine(t *testing.T) {
	// lysine counts 1, 2, 3, 4
	path := writeSeqs(t, "KA\nKKA\nKKKA\nKKKKA\n")
	median, mean, err := AvgLysine(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, median)
	assert.Equal(t, 2.5, mean)
}

func TestAvgLysineOf(t *testing.T) {
	testCases := []struct {
		counts []int
		median float64
		mean   float64
	}{
		{[]int{4}, 4, 4},
		{[]int{5, 1, 3}, 3, 3},
		{[]int{0, 0, 0, 8}, 0, 2},
		{[]int{4, 1, 3, 2}, 2.5, 2.5},
	}
	for _, tc := range testCases {
		median, mean, err := AvgLysineOf(tc.counts)
		require.NoError(t, err)
		assert.Equal(t, tc.median, median, "%v", tc.counts)
		assert.InDelta(t, tc.mean, mean, 1e-12, "%v", tc.counts)
	}
}

func TestLysineCounts(t *testing.T) {
	path := writeSeqs(t, "AEKTAVTK\n\nKKK\nAAA\n")
	counts, err := LysineCounts(path)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 0}, counts)
}

func TestEmptyInput(t *testing.T) {
	path := writeSeqs(t, "\n\n")

	_, _, err := TopLysine(path)
	assert.True(t, errors.Is(err, ErrEmptySequence))

	_, _, err = AvgLysine(path)
	assert.True(t, errors.Is(err, ErrEmptySequence))
}

func TestPercentagesRejectsEmptySequence(t *testing.T) {
	_, err := Percentages([]string{"KA", ""})
	assert.True(t, errors.Is(err, ErrEmptySequence))
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, _, err := TopLysine(missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, _, err = AvgLysine(missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = LysineCounts(missing)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	assert.Equal(t, 2.0, Median(vals))
	assert.Equal(t, []float64{3, 1, 2}, vals)
	assert.Equal(t, 0.0, Median(nil))
}
