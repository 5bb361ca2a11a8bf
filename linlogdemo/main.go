package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/pkg/profile"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/decibelcooper/linlogplot"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

options:
`,
	)
	flag.PrintDefaults()
}

var (
	xRange    = flag.Float64("xrange", 5, "half-width of the sampled x range")
	nPoints   = flag.Int("npoints", 500, "number of samples")
	linThresh = flag.Float64("linthresh", 2, "threshold between the linear and log regions")
	linScale  = flag.Float64("linscale", 1, "stretch factor for the linear region")
	doProfile = flag.Bool("profile", false, "write a CPU profile")
	title     = flag.String("title", "sinh on a lin-log axis", "plot title")
	output    = flag.String("output", "out.png", "output file")
	subs      linlogplot.SubsFlag
)

func init() {
	flag.Var(&subs, "sub", "mantissa subdivision for log-region ticks (may be repeated)")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 0 {
		printUsage()
		log.Fatal("Invalid arguments")
	}
	if *doProfile {
		defer profile.Start().Stop()
	}

	factory, err := linlogplot.ByName(linlogplot.ScaleName)
	if err != nil {
		log.Fatal(err)
	}
	cfg := linlogplot.DefaultConfig()
	cfg.LinThresh = *linThresh
	cfg.LinScale = *linScale
	if len(subs.Subs) > 0 {
		cfg.Subs = subs.Subs
	}
	scale, err := factory(cfg)
	if err != nil {
		log.Fatal(err)
	}

	pts := make(plotter.XYs, *nPoints)
	for i := range pts {
		x := -*xRange + 2*(*xRange)*float64(i)/float64(*nPoints-1)
		pts[i].X = x
		pts[i].Y = math.Sinh(x)
	}

	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "sinh(x)"
	p.X.Tick.Marker = linlogplot.PreciseTicks{NSuggestedTicks: 5}
	scale.Install(&p.Y)
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		log.Fatal(err)
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatal(err)
	}
}
