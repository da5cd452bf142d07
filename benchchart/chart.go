// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders grouped benchmark results to chart
// images, one image per secondary-parameter value combination.
package benchchart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/evolvedbinary/jmhplot/benchgroup"
)

// palette cycles through the per-benchmark series colors.
var palette = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.NRGBA{0xd6, 0x27, 0x28, 0xff},
	color.NRGBA{0x94, 0x67, 0xbd, 0xff},
	color.NRGBA{0x8c, 0x56, 0x4b, 0xff},
	color.NRGBA{0xe3, 0x77, 0xc2, 0xff},
	color.NRGBA{0x7f, 0x7f, 0x7f, 0xff},
}

// errPoints adapts one benchmark's points to the plotter interfaces:
// an XYer for the line and a YErrorer for the error bars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// RenderAll renders one chart per group of g into dir and returns the
// file names written, in group order.
//
// stamp is the run timestamp captured at pipeline start; it seeds
// every artifact name so one run's charts sort together.
func RenderAll(split benchgroup.ParamSplit, g *benchgroup.Grouping, dir, titleSuffix, stamp string) ([]string, error) {
	names := split.SecondaryNames()
	files := make([]string, 0, g.Len())
	for _, key := range g.Keys() {
		file := ChartName(stamp, key)
		err := Render(names, key, g.Get(key), filepath.Join(dir, file), split.Primary.Name, titleSuffix)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// Render draws the chart for one secondary-value combination and
// writes it as a PNG to path.
//
// The X axis is the primary parameter on a log scale; each benchmark
// contributes a line through its (value, score) points with error
// bars of plus or minus its reported score error, labelled in the legend in
// first-seen order. Points with a NaN value or score are skipped.
func Render(names, key []string, set *benchgroup.ResultSet, path, xLabel, titleSuffix string) error {
	pl := plot.New()
	pl.Title.Text = strings.TrimSpace(fmt.Sprintf("(%s)=(%s) %s",
		strings.Join(names, ", "), strings.Join(key, ", "), titleSuffix))
	pl.X.Label.Text = xLabel
	pl.X.Scale = plot.LogScale{}
	pl.X.Tick.Marker = plot.LogTicks{Prec: -1}
	pl.Y.Label.Text = "t (ns)"
	pl.Add(plotter.NewGrid())

	series := 0
	for i, bench := range set.Benchmarks() {
		var pts errPoints
		for _, p := range set.Points(bench) {
			if math.IsNaN(p.Value) || math.IsNaN(p.Score) || p.Value <= 0 {
				// Unplottable on a log axis.
				continue
			}
			e := p.Error
			if math.IsNaN(e) {
				e = 0
			}
			pts.XYs = append(pts.XYs, plotter.XY{X: p.Value, Y: p.Score})
			pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{e, e})
		}
		if len(pts.XYs) == 0 {
			continue
		}

		clr := palette[i%len(palette)]
		line, err := plotter.NewLine(pts.XYs)
		if err != nil {
			return fmt.Errorf("plotting %s: %w", bench, err)
		}
		line.Color = clr
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return fmt.Errorf("plotting %s: %w", bench, err)
		}
		bars.LineStyle.Color = clr
		bars.CapWidth = vg.Points(6)

		pl.Add(line, bars)
		pl.Legend.Add(bench, line)
		series++
	}
	if series == 0 {
		// A log axis cannot be drawn over an empty range. This
		// happens when the primary parameter is not numeric.
		return fmt.Errorf("no plottable points for %s", filepath.Base(path))
	}

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(18*vg.Inch, 12*vg.Inch),
		vgimg.UseDPI(80),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ChartName returns the deterministic artifact name for one
// secondary-value combination: fig_<stamp>_<v1>_<v2>.png and so on, or
// fig_<stamp>.png when there are no secondary parameters.
func ChartName(stamp string, key []string) string {
	parts := append([]string{"fig", stamp}, key...)
	return strings.Join(parts, "_") + ".png"
}
