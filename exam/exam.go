// Package exam runs every exercise in order and prints each answer, the way
// the original homework script did.
package exam

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"seq_exam_go/config"
	"seq_exam_go/lysine_plot"
	"seq_exam_go/lysine_stats"
	"seq_exam_go/number_list"
	"seq_exam_go/orf_scan"
	"seq_exam_go/seq_sort"
)

var log = logging.MustGetLogger("exam")

// Inputs are the files and parameters fed to the exercises.
type Inputs struct {
	Last       int
	SeqsFile   string
	CodonsFile string
	DNAFile    string
	PlotFile   string
}

func DefaultInputs() Inputs {
	return Inputs{
		Last:       config.DefaultLastNumber,
		SeqsFile:   config.DefaultSeqsFile,
		CodonsFile: config.DefaultCodonsFile,
		DNAFile:    config.DefaultDNAFile,
		PlotFile:   config.DefaultPlotFile,
	}
}

// InputsFromOptions applies key=value overrides to the defaults.
func InputsFromOptions(opts config.Options) (Inputs, error) {
	if unknown := opts.Unknown("last", "seqs", "codons", "dna", "plot"); len(unknown) > 0 {
		return Inputs{}, fmt.Errorf("unknown options: %s", strings.Join(unknown, ", "))
	}
	in := DefaultInputs()
	last, err := opts.Int("last", in.Last)
	if err != nil {
		return Inputs{}, err
	}
	in.Last = last
	in.SeqsFile = opts.String("seqs", in.SeqsFile)
	in.CodonsFile = opts.String("codons", in.CodonsFile)
	in.DNAFile = opts.String("dna", in.DNAFile)
	in.PlotFile = opts.String("plot", in.PlotFile)
	return in, nil
}

type step struct {
	name string
	run  func(in Inputs) (string, error)
}

var steps = []step{
	{"generate_number_list", func(in Inputs) (string, error) {
		return number_list.Format(number_list.Generate(in.Last)), nil
	}},
	{"lex_sort_file", func(in Inputs) (string, error) {
		lines, err := seq_sort.LexSortFile(in.SeqsFile)
		return strings.Join(lines, "\n"), err
	}},
	{"top_lysine_stats", func(in Inputs) (string, error) {
		percent, seq, err := lysine_stats.TopLysine(in.SeqsFile)
		return fmt.Sprintf("(%.2f, %s)", percent, seq), err
	}},
	{"avg_lysine_stats", func(in Inputs) (string, error) {
		median, mean, err := lysine_stats.AvgLysine(in.SeqsFile)
		return fmt.Sprintf("(%g, %g)", median, mean), err
	}},
	{"plot_lysine_stats", func(in Inputs) (string, error) {
		err := lysine_plot.PlotFile(in.SeqsFile, lysine_plot.DefaultBins, in.PlotFile)
		return in.PlotFile, err
	}},
	{"translate_dna", func(in Inputs) (string, error) {
		peptides, err := orf_scan.TranslateDNAFile(in.CodonsFile, in.DNAFile)
		return "[" + strings.Join(peptides, ", ") + "]", err
	}},
	{"longest_translatable_sequence", func(in Inputs) (string, error) {
		longest, err := orf_scan.LongestTranslatableFile(in.CodonsFile, in.DNAFile)
		return fmt.Sprint(longest), err
	}},
}

// RunAll runs every exercise, printing answers to w. A failing exercise does
// not stop the others; the number of failures is returned.
func RunAll(in Inputs, w io.Writer) int {
	failed := 0
	for _, s := range steps {
		out, err := s.run(in)
		if err != nil {
			log.Errorf("%s: %v", s.name, err)
			failed++
			continue
		}
		fmt.Fprintln(w, out)
	}
	return failed
}

func Run(args []string) {
	opts := config.ParseArgs(append([]string{"exam"}, args...))
	in, err := InputsFromOptions(opts)
	if err != nil {
		log.Fatalf("%v (use last=, seqs=, codons=, dna=, plot=)", err)
	}

	if failed := RunAll(in, os.Stdout); failed > 0 {
		log.Errorf("%d of %d exercises failed", failed, len(steps))
		os.Exit(1)
	}
}
