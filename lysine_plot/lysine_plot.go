// Package lysine_plot renders the distribution of per-sequence lysine counts.
// It only consumes raw counts; computing them is lysine_stats' job.
package lysine_plot

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/op/go-logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"

	"seq_exam_go/config"
	"seq_exam_go/lysine_stats"
)

var log = logging.MustGetLogger("lysine_plot")

// DefaultBins matches the original 20-bin histogram.
const DefaultBins = 20

var ErrNoData = errors.New("no lysine counts to plot")

var (
	plotWidth  = 8 * vg.Inch
	plotHeight = 5 * vg.Inch
)

// Histogram builds a histogram plot of counts.
func Histogram(counts []int, bins int) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, ErrNoData
	}
	if bins <= 0 {
		return nil, fmt.Errorf("invalid bin count %d", bins)
	}

	values := make(plotter.Values, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}

	p := plot.New()
	p.Title.Text = "Distribution of Lysine Counts"
	p.X.Label.Text = "Lysine Count"
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	h.LineStyle.Width = vg.Points(0.5)
	p.Add(h)
	return p, nil
}

// Save writes the histogram of counts to file. The image format follows the
// file extension (.png, .svg, .pdf, ...).
func Save(counts []int, bins int, file string) error {
	p, err := Histogram(counts, bins)
	if err != nil {
		return err
	}
	if err := p.Save(plotWidth, plotHeight, file); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	log.Infof("Wrote lysine histogram (%d sequences, %d bins) to %s", len(counts), bins, file)
	return nil
}

// SVG renders the histogram of counts as an SVG document.
func SVG(counts []int, bins int) (string, error) {
	p, err := Histogram(counts, bins)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	writer, err := p.WriterTo(plotWidth, plotHeight, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlotFile reads sequences from inFile and saves their lysine histogram to
// outFile.
func PlotFile(inFile string, bins int, outFile string) error {
	counts, err := lysine_stats.LysineCounts(inFile)
	if err != nil {
		return err
	}
	return Save(counts, bins, outFile)
}

func Run(args []string) {
	app := kingpin.New("plot_lysine", "Histogram of lysine counts per sequence")
	inFile := app.Flag("in_file", "One protein sequence per line").Default(config.DefaultSeqsFile).ExistingFile()
	outFile := app.Flag("out", "Image file; format from extension").Default(config.DefaultPlotFile).String()
	bins := app.Flag("bins", "Number of histogram bins").Default(strconv.Itoa(DefaultBins)).Int()
	if _, err := app.Parse(args); err != nil {
		app.Fatalf("%s, try --help", err)
	}

	if err := PlotFile(*inFile, *bins, *outFile); err != nil {
		log.Fatalf("Failed to plot lysine counts: %v", err)
	}
	fmt.Println(*outFile)
}
