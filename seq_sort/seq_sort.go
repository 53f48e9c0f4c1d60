package seq_sort

import (
	"fmt"
	"sort"
	"strings"

	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"seq_exam_go/config"
	"seq_exam_go/utils"
)

var log = logging.MustGetLogger("seq_sort")

// LexSortFile returns the trimmed lines of file sorted in byte order.
func LexSortFile(file string) ([]string, error) {
	lines, err := common.ReadLines(file)
	if err != nil {
		return nil, err
	}
	sort.Strings(lines)
	log.Debugf("Sorted %d lines from %s", len(lines), file)
	return lines, nil
}

func Run(args []string) {
	app := kingpin.New("lex_sort", "Sort the sequences of a file lexicographically")
	inFile := app.Flag("in_file", "One sequence per line").Default(config.DefaultSeqsFile).ExistingFile()
	if _, err := app.Parse(args); err != nil {
		app.Fatalf("%s, try --help", err)
	}

	lines, err := LexSortFile(*inFile)
	if err != nil {
		log.Fatalf("Failed to sort %s: %v", *inFile, err)
	}
	fmt.Println(strings.Join(lines, "\n"))
}
