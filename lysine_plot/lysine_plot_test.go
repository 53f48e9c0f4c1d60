package lysine_plot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCounts = []int{0, 1, 1, 2, 3, 3, 3, 5, 8, 13}

func TestHistogram(t *testing.T) {
	p, err := Histogram(sampleCounts, DefaultBins)
	require.NoError(t, err)
	assert.Equal(t, "Distribution of Lysine Counts", p.Title.Text)
	assert.Equal(t, "Lysine Count", p.X.Label.Text)
	assert.Equal(t, "Frequency", p.Y.Label.Text)
}

func TestHistogramErrors(t *testing.T) {
	_, err := Histogram(nil, DefaultBins)
	assert.True(t, errors.Is(err, ErrNoData))

	_, err = Histogram(sampleCounts, 0)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"hist.png", "hist.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(sampleCounts, DefaultBins, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	err := Save(sampleCounts, DefaultBins, filepath.Join(t.TempDir(), "hist.unknown"))
	assert.Error(t, err)
}

func TestSVG(t *testing.T) {
	svg, err := SVG(sampleCounts, DefaultBins)
	require.NoError(t, err)
	assert.True(t, strings.Contains(svg, "<svg"))
}

func TestPlotFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "multi_seqs.txt")
	require.NoError(t, os.WriteFile(in, []byte("KKA\nAKA\nAAA\nKKKK\n"), 0644))
	out := filepath.Join(dir, "lysine.png")

	require.NoError(t, PlotFile(in, DefaultBins, out))
	_, err := os.Stat(out)
	assert.NoError(t, err)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	assert.True(t, errors.Is(PlotFile(empty, DefaultBins, out), ErrNoData))
}
