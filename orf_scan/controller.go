package orf_scan

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/alecthomas/kingpin.v2"

	"seq_exam_go/config"
	"seq_exam_go/utils"
)

// parseOrDie parses args, exiting with usage hints on bad flags.
func parseOrDie(app *kingpin.Application, args []string) {
	if _, err := app.Parse(args); err != nil {
		app.Fatalf("%s, try --help", err)
	}
}

func inputFlags(app *kingpin.Application) (codonsFile, dnaFile *string) {
	codonsFile = app.Flag("codons", "Codon table file (codon symbol per line)").
		Default(config.DefaultCodonsFile).ExistingFile()
	dnaFile = app.Flag("dna", "DNA sequence file").
		Default(config.DefaultDNAFile).ExistingFile()
	return
}

// RunTranslate prints the peptide of every frame-0 ORF, one per line.
func RunTranslate(args []string) {
	app := kingpin.New("translate_dna", "Translate frame-0 ORFs with a custom codon table")
	codonsFile, dnaFile := inputFlags(app)
	includeStart := app.Flag("include_start", "Emit the start codon's residue at the head of each peptide").Bool()
	parseOrDie(app, args)

	table, seq, err := load(*codonsFile, *dnaFile)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	scanner := NewScanner(table)
	scanner.IncludeStart = *includeStart
	orfs, err := scanner.Frame(seq, 0)
	if err != nil {
		log.Fatalf("Translation failed: %v", err)
	}
	for _, orf := range orfs {
		fmt.Println(orf.Peptide)
	}
	log.Infof("%d peptides translated", len(orfs))
}

// RunLongest prints the length (nt) of the longest ORF over three frames.
func RunLongest(args []string) {
	app := kingpin.New("longest_orf", "Length in nucleotides of the longest translatable sequence")
	codonsFile, dnaFile := inputFlags(app)
	parseOrDie(app, args)

	longest, err := LongestTranslatableFile(*codonsFile, *dnaFile)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}
	fmt.Println(longest)
}

type SummaryStats struct {
	Total         int
	Forward       int
	Reverse       int
	LongestLength int
	LongestFrame  string
	LongestStart  int
	LongestEnd    int
	FrameCounts   map[string]int
	Lengths       []float64
}

func newSummary() *SummaryStats {
	return &SummaryStats{FrameCounts: make(map[string]int)}
}

func (s *SummaryStats) add(frame string, strand string, start, end int) {
	length := end - start + 1
	s.Total++
	if strand == "+" {
		s.Forward++
	} else {
		s.Reverse++
	}
	s.FrameCounts[frame]++
	s.Lengths = append(s.Lengths, float64(length))
	if length > s.LongestLength {
		s.LongestLength = length
		s.LongestFrame = frame
		s.LongestStart = start
		s.LongestEnd = end
	}
}

func (s *SummaryStats) write(w io.Writer) {
	avg := 0.0
	if s.Total > 0 {
		avg = stat.Mean(s.Lengths, nil)
	}
	fmt.Fprintln(w, "\n=== ORF Summary ===")
	fmt.Fprintf(w, "Total ORFs: %d\n", s.Total)
	fmt.Fprintf(w, "  Forward strand: %d\n", s.Forward)
	fmt.Fprintf(w, "  Reverse strand: %d\n", s.Reverse)
	fmt.Fprintf(w, "Longest ORF: %d bp (frame %s, %d-%d)\n", s.LongestLength, s.LongestFrame, s.LongestStart, s.LongestEnd)
	fmt.Fprintf(w, "Average ORF length: %.1f bp\n", avg)
	fmt.Fprintln(w, "Frame usage:")
	frames := make([]string, 0, len(s.FrameCounts))
	for frame := range s.FrameCounts {
		frames = append(frames, frame)
	}
	sort.Strings(frames)
	for _, frame := range frames {
		fmt.Fprintf(w, "  %s: %d\n", frame, s.FrameCounts[frame])
	}
}

// listORFs writes every ORF of at least minLen nt as TSV rows with 1-based,
// forward-strand coordinates.
func listORFs(scanner *Scanner, seq string, strands []string, minLen int, output io.Writer, summary *SummaryStats) error {
	for _, strand := range strands {
		target := seq
		if strand == "-" {
			target = common.ReverseComplement(seq)
		}
		orfs, err := scanner.Frames(target)
		if err != nil {
			return fmt.Errorf("strand %s: %w", strand, err)
		}
		for _, orf := range orfs {
			if orf.Length() < minLen {
				continue
			}
			var start, end int
			var frame string
			if strand == "-" {
				start = len(seq) - orf.End + 1
				end = len(seq) - orf.Start
				frame = fmt.Sprintf("-%d", orf.Frame+1)
			} else {
				start = orf.Start + 1
				end = orf.End
				frame = fmt.Sprintf("+%d", orf.Frame+1)
			}
			summary.add(frame, strand, start, end)
			fmt.Fprintf(output, "%s\t%s\t%d\t%d\t%d\t%s\n", frame, strand, start, end, orf.Length(), orf.Peptide)
		}
	}
	return nil
}

func strandsFor(flag string) ([]string, error) {
	switch flag {
	case "+":
		return []string{"+"}, nil
	case "-":
		return []string{"-"}, nil
	case "both":
		return []string{"+", "-"}, nil
	}
	return nil, fmt.Errorf("invalid strand: %s (choose +, -, or both)", flag)
}

// RunList lists every complete ORF as TSV.
func RunList(args []string) {
	app := kingpin.New("orf_list", "List complete ORFs in all reading frames")
	codonsFile, dnaFile := inputFlags(app)
	minLen := app.Flag("minlen", "Minimum ORF length (nt)").Default("0").Int()
	strandFlag := app.Flag("strand", "Strand to search: +, -, or both").Default("+").Enum("+", "-", "both")
	includeStart := app.Flag("include_start", "Emit the start codon's residue at the head of each peptide").Bool()
	outFile := app.Flag("out", "Write output to file (optional)").String()
	summaryFlag := app.Flag("summary", "Print ORF summary to stdout").Bool()
	parseOrDie(app, args)

	strands, err := strandsFor(*strandFlag)
	if err != nil {
		log.Fatal(err)
	}

	table, seq, err := load(*codonsFile, *dnaFile)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	// Prepare output destination
	var output io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		output = f
	}

	scanner := &Scanner{Table: table, IncludeStart: *includeStart}
	summary := newSummary()
	fmt.Fprintln(output, strings.Join([]string{"frame", "strand", "start", "end", "length", "peptide"}, "\t"))
	if err := listORFs(scanner, seq, strands, *minLen, output, summary); err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	if *summaryFlag {
		summary.write(os.Stdout)
	}
}
