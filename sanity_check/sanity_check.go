package sanity_check

import (
	"fmt"
	"io"
	"os"

	"seq_exam_go/config" // Version control file
)

// Message is the line printed by a successful check.
func Message() string {
	return fmt.Sprintf("Successfully running Seq Exam! (%s)", config.Main_version)
}

// Run performs a simple sanity check to ensure the binary is
// running properly printing helpful message and version number.
func Run(args []string) {
	write(os.Stdout)
}

func write(w io.Writer) {
	fmt.Fprintln(w, Message())
}
