package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/linlogplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <proio-input-file>

options:
`,
	)
	flag.PrintDefaults()
}

var (
	maxEDep   = flag.Float64("maxedep", 50, "histogram upper edge in MeV")
	nBins     = flag.Int("nbins", 100, "number of histogram bins")
	linThresh = flag.Float64("linthresh", 2, "count threshold between the linear and log regions")
	linScale  = flag.Float64("linscale", 1, "stretch factor for the linear region")
	title     = flag.String("title", "", "plot title")
	output    = flag.String("output", "out.png", "output file")
	subs      linlogplot.SubsFlag
)

func init() {
	flag.Var(&subs, "sub", "mantissa subdivision for log-region ticks (may be repeated)")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	reader, err := proio.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer reader.Close()

	hist := hbook.NewH1D(*nBins, 0, *maxEDep)
	for event := range reader.ScanEvents() {
		for _, id := range event.TaggedEntries("Tracker") {
			eDep, ok := event.GetEntry(id).(*eic.EnergyDep)
			if !ok {
				continue
			}
			hist.Fill(float64(eDep.GetMean()*1000), 1)
		}
	}

	// Bin counts span several decades but bottom out at zero, so the counts
	// axis gets the lin-log scale.
	scale, err := linlogplot.New(linlogplot.Config{
		Base:      10,
		LinThresh: *linThresh,
		LinScale:  *linScale,
		Subs:      subs.Subs,
		Clip:      linlogplot.Mask(),
	})
	if err != nil {
		log.Fatal(err)
	}

	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "E dep. (MeV)"
	p.Y.Label.Text = "Counts"
	p.X.Tick.Marker = linlogplot.PreciseTicks{NSuggestedTicks: 5}
	scale.Install(&p.Y)

	hPlot := hplot.NewH1D(hist)
	hPlot.Infos.Style = hplot.HInfoSummary
	p.Add(hPlot)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatal(err)
	}
}
