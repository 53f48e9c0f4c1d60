package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"seq_exam_go/benchmark"
	"seq_exam_go/config"
	"seq_exam_go/exam"
	"seq_exam_go/lysine_plot"
	"seq_exam_go/lysine_stats"
	"seq_exam_go/number_list"
	"seq_exam_go/orf_scan"
	"seq_exam_go/sanity_check"
	"seq_exam_go/seq_sort"
)

var log = logging.MustGetLogger("seq_exam")

// modules that own a logger
var loggedModules = []string{
	"seq_exam", "benchmark", "codon_table", "exam", "lysine_plot",
	"lysine_stats", "orf_scan", "seq_sort",
}

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Seq Exam - Custom Help Menu
Usage:
  seq_exam <tool> [options]

Tools:
  exam			Run every exercise in order (key=value overrides:
			last, seqs, codons, dna, plot)
  number_list		Multiples of 3 up to a bound
  lex_sort		Sort sequences of a file lexicographically
  top_lysine		Sequence with the highest lysine percentage
  avg_lysine		Median and mean lysine count
  plot_lysine		Histogram of lysine counts
  translate_dna		Translate frame-0 ORFs with a custom codon table
  longest_orf		Length of the longest translatable sequence
  orf_list		List ORFs in all reading frames
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information
  -debug		Verbose logging

Benchmarking:
  -benchmark		Must be used in associtation with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Seq Exam - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tSeq Exam:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tExam Runner:\t\t%s\n", config.Exam)
	fmt.Printf("\tNumber List:\t\t%s\n", config.Number_List)
	fmt.Printf("\tLex Sort:\t\t%s\n", config.Lex_Sort)
	fmt.Printf("\tLysine Stats:\t\t%s\n", config.Lysine_Stats)
	fmt.Printf("\tLysine Plot:\t\t%s\n", config.Lysine_Plot)
	fmt.Printf("\tCodon Table:\t\t%s\n", config.Codon_Table)
	fmt.Printf("\tORF Scan:\t\t%s\n", config.ORF_Scan)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

func setupLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{level:.4s} %{module}: %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))

	level := logging.NOTICE
	if debug {
		level = logging.DEBUG
	}
	for _, module := range loggedModules {
		leveled.SetLevel(level, module)
	}
	logging.SetBackend(leveled)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	if len(os.Args) < 3 {
		for _, arg := range os.Args[1:] {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global flags
	benchmarking := false
	debug := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		switch arg {
		case "-benchmark":
			benchmarking = true
		case "-debug":
			debug = true
		default:
			cleanedArgs = append(cleanedArgs, arg)
		}
	}
	setupLogging(debug)
	log.Debugf("Running %s %v", toolName, cleanedArgs)

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "exam":
			exam.Run(cleanedArgs)
		case "number_list":
			number_list.Run(cleanedArgs)
		case "lex_sort":
			seq_sort.Run(cleanedArgs)
		case "top_lysine":
			lysine_stats.RunTop(cleanedArgs)
		case "avg_lysine":
			lysine_stats.RunAvg(cleanedArgs)
		case "plot_lysine":
			lysine_plot.Run(cleanedArgs)
		case "translate_dna":
			orf_scan.RunTranslate(cleanedArgs)
		case "longest_orf":
			orf_scan.RunLongest(cleanedArgs)
		case "orf_list":
			orf_scan.RunList(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("seq_exam %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
