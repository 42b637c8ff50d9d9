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

// Package dataset reads delimiter separated numeric files into plottable series.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/plotter"
)

const (
	commentChar = '#'

	maxLineLength = 1024 * 1024
)

// Options controls how a file is split into fields and which fields are plotted.
type Options struct {
	Delimiter rune
	XColumn   int
	YColumn   int
}

// DefaultOptions returns comma separated input with x in the first and y in the second column.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		XColumn:   0,
		YColumn:   1,
	}
}

func (o Options) validate() error {
	if o.Delimiter == commentChar || o.Delimiter == '"' || o.Delimiter == '\r' || o.Delimiter == '\n' ||
		o.Delimiter == utf8.RuneError || !utf8.ValidRune(o.Delimiter) {
		return errors.Errorf("invalid delimiter %q", o.Delimiter)
	}
	if o.XColumn < 0 || o.YColumn < 0 {
		return errors.Errorf("column indexes must not be negative (x=%d, y=%d)", o.XColumn, o.YColumn)
	}
	return nil
}

// ParseDelimiter converts user input into a delimiter rune.
// Besides a single character it accepts "tab", "\t" and "space".
func ParseDelimiter(value string) (rune, error) {
	switch value {
	case "tab", `\t`:
		return '\t', nil
	case "space":
		return ' ', nil
	}

	if utf8.RuneCountInString(value) != 1 {
		return 0, errors.Errorf("delimiter must be a single character, got %q", value)
	}
	delimiter, _ := utf8.DecodeRuneInString(value)
	return delimiter, nil
}

// Series is a single labelled set of points read from one input.
type Series struct {
	Label  string
	Points plotter.XYs
}

// Len returns number of points.
func (s Series) Len() int {
	return len(s.Points)
}

// Bounds is the smallest rectangle containing all points of a series.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Bounds returns extents of the series. It returns false for a series without points.
func (s Series) Bounds() (Bounds, bool) {
	if len(s.Points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	for _, p := range s.Points {
		b.XMin = math.Min(b.XMin, p.X)
		b.XMax = math.Max(b.XMax, p.X)
		b.YMin = math.Min(b.YMin, p.Y)
		b.YMax = math.Max(b.YMax, p.Y)
	}
	return b, true
}

// Load reads the file at path. The series is labelled with path as given.
func Load(path string, opts Options) (Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return Series{}, errors.Wrapf(err, "could not open %q", path)
	}
	defer file.Close()

	series, err := Read(file, path, opts)
	if err != nil {
		return Series{}, err
	}

	logrus.Debugf("Loaded %d points from %q", series.Len(), path)
	return series, nil
}

// Read parses numeric rows from r. Everything after '#' is a comment, rows left
// blank are skipped and every other row must have the same number of fields.
func Read(r io.Reader, label string, opts Options) (Series, error) {
	if err := opts.validate(); err != nil {
		return Series{}, errors.Wrapf(err, "%s", label)
	}

	content, err := stripComments(r)
	if err != nil {
		return Series{}, errors.Wrapf(err, "%s", label)
	}

	reader := csv.NewReader(content)
	reader.Comma = opts.Delimiter
	reader.Comment = commentChar
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	series := Series{Label: label, Points: plotter.XYs{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Series{}, errors.Wrapf(err, "%s", label)
		}

		line, _ := reader.FieldPos(0)
		if opts.XColumn >= len(record) || opts.YColumn >= len(record) {
			return Series{}, errors.Errorf("%s:%d: row has %d columns, cannot plot column %d against column %d",
				label, line, len(record), opts.YColumn, opts.XColumn)
		}

		x, err := parseField(record[opts.XColumn])
		if err != nil {
			return Series{}, errors.Wrapf(err, "%s:%d: column %d", label, line, opts.XColumn)
		}
		y, err := parseField(record[opts.YColumn])
		if err != nil {
			return Series{}, errors.Wrapf(err, "%s:%d: column %d", label, line, opts.YColumn)
		}

		series.Points = append(series.Points, plotter.XY{X: x, Y: y})
	}

	return series, nil
}

// stripComments drops comments and turns whitespace-only lines into bare comment
// markers, so the csv reader skips them while keeping line numbers intact.
func stripComments(r io.Reader) (io.Reader, error) {
	buffer := &bytes.Buffer{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexRune(line, commentChar); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			buffer.WriteRune(commentChar)
		} else {
			buffer.WriteString(line)
		}
		buffer.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}
	return buffer, nil
}

func parseField(field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, errors.Wrap(err, "not a number")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.Errorf("non-finite value %q", field)
	}
	return value, nil
}
