package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/plot"
	"github.com/midbel/plot/frame"
	"github.com/midbel/plot/render/gpu"
	"github.com/midbel/plot/render/svg"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultBins   = 10
)

func main() {
	var (
		kind   = flag.String("type", "scatter", "chart type (scatter, line, histogram, bar)")
		title  = flag.String("title", "", "chart title")
		xtitle = flag.String("xtitle", "", "x axis title")
		ytitle = flag.String("ytitle", "", "y axis title")
		xcol   = flag.String("xcol", "0", "x column, by name or index")
		ycol   = flag.String("ycol", "1", "y column, by name or index")
		hue    = flag.String("hue", "", "hue column, by name or index")
		bins   = flag.Int("bins", defaultBins, "histogram bin count")
		xlog   = flag.Bool("xlog", false, "logarithmic x axis")
		ylog   = flag.Bool("ylog", false, "logarithmic y axis")
		xmin   = flag.Float64("xmin", 0, "x axis minimum")
		xmax   = flag.Float64("xmax", 0, "x axis maximum")
		ymin   = flag.Float64("ymin", 0, "y axis minimum")
		ymax   = flag.Float64("ymax", 0, "y axis maximum")
		grid   = flag.Bool("grid", false, "draw grid lines")
		legend = flag.Bool("legend", false, "draw the legend")
		width  = flag.Int("width", defaultWidth, "chart width")
		height = flag.Int("height", defaultHeight, "chart height")
		result = flag.String("file", "", "output file (.png or .svg)")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "missing input file")
		os.Exit(2)
	}
	df, err := frame.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := plot.New().SetTitle(*title)
	p.X.SetTitle(*xtitle)
	p.Y.SetTitle(*ytitle)
	if *xlog {
		p.X.Logarithmic()
	}
	if *ylog {
		p.Y.Logarithmic()
	}
	setFlagged(p.X, "xmin", *xmin, (*plot.Axis).SetMin)
	setFlagged(p.X, "xmax", *xmax, (*plot.Axis).SetMax)
	setFlagged(p.Y, "ymin", *ymin, (*plot.Axis).SetMin)
	setFlagged(p.Y, "ymax", *ymax, (*plot.Axis).SetMax)
	if *grid {
		p.Grid().Dashed()
	}
	if *legend {
		p.ShowLegend()
	}

	if err := addSerie(p, df, *kind, *xcol, *ycol, *hue, *bins); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := draw(p, *result, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSerie(p *plot.Plot, df *frame.Frame, kind, xcol, ycol, hue string, bins int) error {
	switch kind {
	case "scatter":
		x, err := column(df, xcol)
		if err != nil {
			return err
		}
		y, err := column(df, ycol)
		if err != nil {
			return err
		}
		s := p.Scatter(x, y)
		if hue != "" {
			h, err := column(df, hue)
			if err != nil {
				return err
			}
			s.HueFrom(h)
		}
	case "line":
		x, err := column(df, xcol)
		if err != nil {
			return err
		}
		y, err := column(df, ycol)
		if err != nil {
			return err
		}
		p.Line(x, y)
	case "histogram":
		x, err := column(df, xcol)
		if err != nil {
			return err
		}
		p.Histogram(x, bins)
	case "bar":
		x, err := column(df, xcol)
		if err != nil {
			return err
		}
		y, err := column(df, ycol)
		if err != nil {
			return err
		}
		p.Bar(x, y)
	default:
		return fmt.Errorf("unknown chart type %s", kind)
	}
	return nil
}

func draw(p *plot.Plot, file string, width, height int) error {
	if strings.EqualFold(filepath.Ext(file), ".svg") {
		r := svg.New(float64(width), float64(height))
		if err := p.Draw(r); err != nil {
			return err
		}
		w, err := os.Create(file)
		if err != nil {
			return err
		}
		defer w.Close()
		r.Render(w)
		return nil
	}
	r, err := gpu.New(width, height)
	if err != nil {
		return err
	}
	if err := p.Draw(r); err != nil {
		return err
	}
	if file == "" {
		return r.EncodePNG(os.Stdout)
	}
	return r.SavePNG(file)
}

func column(df *frame.Frame, sel string) (frame.Column, error) {
	if i, err := strconv.Atoi(sel); err == nil {
		return df.At(i)
	}
	return df.Column(sel)
}

// setFlagged applies an axis override only when its flag was given on
// the command line, zero is a legal axis bound.
func setFlagged(a *plot.Axis, name string, value float64, set func(*plot.Axis, float64) *plot.Axis) {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	if found {
		set(a, value)
	}
}
