package number_list

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"seq_exam_go/config"
)

// Generate returns 3, 6, 9, ... up to and including last when last is a
// multiple of 3, otherwise up to the largest multiple of 3 below it.
func Generate(last int) []int {
	if last < 3 {
		return []int{}
	}
	numbers := make([]int, 0, last/3)
	for n := 3; n <= last; n += 3 {
		numbers = append(numbers, n)
	}
	return numbers
}

// Format renders numbers the way the original script printed lists.
func Format(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func Run(args []string) {
	app := kingpin.New("number_list", "Multiples of 3 up to a bound")
	last := app.Flag("last", "Last number of the list (inclusive)").Default(strconv.Itoa(config.DefaultLastNumber)).Int()
	if _, err := app.Parse(args); err != nil {
		app.Fatalf("%s, try --help", err)
	}
	fmt.Println(Format(Generate(*last)))
}
