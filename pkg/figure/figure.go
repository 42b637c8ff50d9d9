// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package figure renders series read by package dataset into an image using gonum/plot.
package figure

import (
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/agrimsaharia/ns-3-dev-git/pkg/dataset"
)

const (
	// DefaultYTicks bounds the y axis intervals when nothing else is configured.
	DefaultYTicks = 15
	// DefaultWidth and DefaultHeight give a 4:3 figure.
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch

	// Fraction of data span left empty on each side of an axis.
	axisMargin = 0.05
)

var (
	glyphRadius = vg.Points(2.5)
	lineWidth   = vg.Points(1.5)
)

// formats gonum/plot can encode, keyed by lower-case file extension.
var formats = map[string]struct{}{
	"eps": {}, "jpg": {}, "jpeg": {}, "pdf": {}, "png": {},
	"svg": {}, "tif": {}, "tiff": {},
}

// Format returns image format derived from extension of path.
func Format(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := formats[format]; !ok {
		return "", errors.Errorf("unsupported figure format %q for %q", format, path)
	}
	return format, nil
}

// Figure describes how series are laid out in one output image.
type Figure struct {
	Mode   Mode
	Title  string
	XLabel string
	YLabel string
	// YTicks is the maximum number of intervals on the y axis.
	YTicks int
	Grid   bool
	Legend LegendPosition
	Width  vg.Length
	Height vg.Length
}

// New returns figure with defaults: grid on, legend in the upper left corner
// and about 15 y axis intervals.
func New(mode Mode) *Figure {
	return &Figure{
		Mode:   mode,
		YTicks: DefaultYTicks,
		Grid:   true,
		Legend: UpperLeft,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Render builds the plot. Every series gets its own colour and a legend entry with its label.
func (f *Figure) Render(series ...dataset.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	if f.Grid {
		p.Add(plotter.NewGrid())
	}

	for i, s := range series {
		if s.Len() == 0 {
			logrus.Warnf("%q has no points", s.Label)
		}

		thumbnail, err := f.add(p, i, s)
		if err != nil {
			return nil, errors.Wrapf(err, "could not plot %q", s.Label)
		}

		if f.Legend != NoLegend {
			p.Legend.Add(s.Label, thumbnail)
		}
	}

	p.Legend.Top = f.Legend.top()
	p.Legend.Left = f.Legend.left()

	padAxis(&p.X)
	padAxis(&p.Y)
	p.Y.Tick.Marker = MaxBinsTicker{Bins: f.YTicks}

	return p, nil
}

func (f *Figure) add(p *plot.Plot, i int, s dataset.Series) (plot.Thumbnailer, error) {
	color := plotutil.Color(i)

	switch f.Mode {
	case Scatter:
		scatter, err := plotter.NewScatter(s.Points)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = color
		scatter.GlyphStyle.Radius = glyphRadius
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		return scatter, nil

	case Line:
		line, err := plotter.NewLine(s.Points)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = color
		line.LineStyle.Width = lineWidth
		p.Add(line)
		return line, nil
	}

	return nil, errors.Errorf("unknown plot mode %d", f.Mode)
}

// padAxis widens axis range by axisMargin on both sides. Axis without data gets [0, 1].
func padAxis(axis *plot.Axis) {
	if math.IsInf(axis.Min, 0) || math.IsInf(axis.Max, 0) || axis.Min > axis.Max {
		axis.Min, axis.Max = 0, 1
		return
	}

	span := axis.Max - axis.Min
	if span == 0 {
		span = math.Max(math.Abs(axis.Min), 1)
	}
	axis.Min -= span * axisMargin
	axis.Max += span * axisMargin
}

// Save renders series and writes the image to path. Format follows the extension of path.
func (f *Figure) Save(path string, series ...dataset.Series) error {
	if _, err := Format(path); err != nil {
		return err
	}

	p, err := f.Render(series...)
	if err != nil {
		return err
	}

	if err := p.Save(f.Width, f.Height, path); err != nil {
		return errors.Wrapf(err, "could not save figure %q", path)
	}

	logrus.Debugf("Saved %s figure with %d series to %q", f.Mode, len(series), path)
	return nil
}

// WriteTo renders series and encodes the image in given format to w.
func (f *Figure) WriteTo(w io.Writer, format string, series ...dataset.Series) (int64, error) {
	p, err := f.Render(series...)
	if err != nil {
		return 0, err
	}

	writer, err := p.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return 0, errors.Wrapf(err, "could not encode figure as %q", format)
	}

	return writer.WriteTo(w)
}
