package lysine_stats

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"

	"seq_exam_go/config"
)

func newApp(name, help string) (*kingpin.Application, *string) {
	app := kingpin.New(name, help)
	inFile := app.Flag("in_file", "One protein sequence per line").Default(config.DefaultSeqsFile).ExistingFile()
	return app, inFile
}

// RunTop prints the highest lysine percentage and its sequence.
func RunTop(args []string) {
	app, inFile := newApp("top_lysine", "Sequence with the highest percentage of lysine")
	if _, err := app.Parse(args); err != nil {
		app.Fatalf("%s, try --help", err)
	}

	percent, seq, err := TopLysine(*inFile)
	if err != nil {
		log.Fatalf("Failed to compute lysine stats: %v", err)
	}
	fmt.Printf("%.2f\t%s\n", percent, seq)
}

// RunAvg prints the median and mean lysine count.
func RunAvg(args []string) {
	app, inFile := newApp("avg_lysine", "Median and mean number of lysines per sequence")
	if _, err := app.Parse(args); err != nil {
		app.Fatalf("%s, try --help", err)
	}

	median, mean, err := AvgLysine(*inFile)
	if err != nil {
		log.Fatalf("Failed to compute lysine stats: %v", err)
	}
	fmt.Printf("Median:\t%g\nMean:\t%g\n", median, mean)
}
