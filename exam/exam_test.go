package exam

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seq_exam_go/config"
)

const codons = `ATG M:start
GGT G
TCG S
GTC V
TAA *
TAG *
TGA *
`

func writeInputs(t *testing.T) Inputs {
	t.Helper()
	dir := t.TempDir()
	in := Inputs{
		Last:       12,
		SeqsFile:   filepath.Join(dir, "multi_seqs.txt"),
		CodonsFile: filepath.Join(dir, "codons.txt"),
		DNAFile:    filepath.Join(dir, "dna.txt"),
		PlotFile:   filepath.Join(dir, "lysine.svg"),
	}
	require.NoError(t, os.WriteFile(in.SeqsFile, []byte("KKKA\nAAAA\nKA\nAKKK\n"), 0644))
	require.NoError(t, os.WriteFile(in.CodonsFile, []byte(codons), 0644))
	require.NoError(t, os.WriteFile(in.DNAFile, []byte("CGTATGGGTTCGATGTCGGTCTAACCC\n"), 0644))
	return in
}

func TestRunAll(t *testing.T) {
	in := writeInputs(t)
	var out bytes.Buffer

	failed := RunAll(in, &out)
	require.Equal(t, 0, failed)

	expected := strings.Join([]string{
		"[3, 6, 9, 12]",
		"AAAA\nAKKK\nKA\nKKKA",
		"(75.00, KKKA)",
		"(2, 1.75)",
		in.PlotFile,
		"[GSMSV]",
		"21",
	}, "\n") + "\n"
	assert.Equal(t, expected, out.String())

	_, err := os.Stat(in.PlotFile)
	assert.NoError(t, err)
}

func TestRunAllContinuesAfterFailure(t *testing.T) {
	in := writeInputs(t)
	in.CodonsFile = filepath.Join(filepath.Dir(in.CodonsFile), "missing.txt")
	var out bytes.Buffer

	failed := RunAll(in, &out)
	assert.Equal(t, 2, failed)
	assert.Contains(t, out.String(), "(75.00, KKKA)")
	assert.NotContains(t, out.String(), "GSMSV")
}

func TestInputsFromOptions(t *testing.T) {
	in, err := InputsFromOptions(config.ParseArgs([]string{"exam", "last=30", "dna=x.txt"}))
	require.NoError(t, err)
	assert.Equal(t, 30, in.Last)
	assert.Equal(t, "x.txt", in.DNAFile)
	assert.Equal(t, config.DefaultCodonsFile, in.CodonsFile)

	_, err = InputsFromOptions(config.ParseArgs([]string{"exam", "colour=red"}))
	assert.Error(t, err)

	_, err = InputsFromOptions(config.ParseArgs([]string{"exam", "last=many"}))
	assert.Error(t, err)
}
