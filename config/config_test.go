package config

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	opts := ParseArgs([]string{"exam", "codons=alt/codons.txt", "last=30", "flag"})

	assert.Equal(t, "exam", opts.Tool)
	assert.Equal(t, "alt/codons.txt", opts.String("codons", DefaultCodonsFile))
	assert.Equal(t, DefaultDNAFile, opts.String("dna", DefaultDNAFile))

	last, err := opts.Int("last", DefaultLastNumber)
	require.NoError(t, err)
	assert.Equal(t, 30, last)

	v, ok := opts.Params["flag"]
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestParseArgsEmpty(t *testing.T) {
	opts := ParseArgs(nil)
	assert.Empty(t, opts.Tool)
	assert.Empty(t, opts.Params)

	last, err := opts.Int("last", DefaultLastNumber)
	require.NoError(t, err)
	assert.Equal(t, DefaultLastNumber, last)
}

func TestIntRejectsGarbage(t *testing.T) {
	opts := ParseArgs([]string{"exam", "last=abc"})
	_, err := opts.Int("last", DefaultLastNumber)
	assert.Error(t, err)
}

func TestUnknown(t *testing.T) {
	opts := ParseArgs([]string{"exam", "dna=x", "colour=red", "size=3"})
	unknown := opts.Unknown("dna", "codons")
	sort.Strings(unknown)
	assert.Equal(t, []string{"colour", "size"}, unknown)
}

func TestSplitOption(t *testing.T) {
	testCases := []struct {
		arg      string
		expected [2]string
	}{
		{"a=b", [2]string{"a", "b"}},
		{"a=b=c", [2]string{"a", "b=c"}},
		{"plain", [2]string{"plain", ""}},
		{"=v", [2]string{"", "v"}},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, splitOption(tc.arg))
	}
}
