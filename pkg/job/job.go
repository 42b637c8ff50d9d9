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

// Package job turns a list of input files into one saved figure.
package job

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/agrimsaharia/ns-3-dev-git/pkg/dataset"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/figure"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/utils/err_collection"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/utils/fs"
)

// Job describes one output figure.
type Job struct {
	// Name of the figure file inside the output directory.
	Name   string
	Mode   figure.Mode
	Inputs []string
	// Labels override legend entries of inputs in order. Missing or empty ones fall back to the path.
	Labels []string

	// Optional; empty values keep what Options.Figure says.
	Title  string
	XLabel string
	YLabel string
}

// Validate checks that job can be run.
func (j Job) Validate() error {
	if j.Name == "" {
		return errors.New("figure name is required")
	}
	if len(j.Inputs) == 0 {
		return errors.Errorf("figure %q: at least one input file is required", j.Name)
	}
	if len(j.Labels) > len(j.Inputs) {
		return errors.Errorf("figure %q: %d labels given for %d input files", j.Name, len(j.Labels), len(j.Inputs))
	}
	return nil
}

// Options are shared by all jobs of a run.
type Options struct {
	OutputDir string
	Dataset   dataset.Options
	// Figure is the layout template. Mode, and title and labels when set, come from the job.
	Figure figure.Figure
	// Progress receives every input path before it is read. Nil discards it.
	Progress io.Writer
}

// DefaultOptions writes to current directory using default reader and figure layout.
func DefaultOptions() Options {
	return Options{
		OutputDir: ".",
		Dataset:   dataset.DefaultOptions(),
		Figure:    *figure.New(figure.Scatter),
	}
}

// Result of a successful run.
type Result struct {
	Path   string
	Series []dataset.Series
}

// Run loads inputs of the job in order, renders them and saves the figure.
// All inputs are read even when some of them fail so every broken file is reported at once.
func Run(job Job, opts Options) (Result, error) {
	if err := job.Validate(); err != nil {
		return Result{}, err
	}

	path := fs.FigurePath(opts.OutputDir, job.Name)
	if _, err := figure.Format(path); err != nil {
		return Result{}, err
	}

	series, err := Load(job.Inputs, job.Labels, opts.Dataset, opts.Progress)
	if err != nil {
		return Result{}, errors.Wrapf(err, "figure %q", job.Name)
	}

	fig := opts.Figure
	fig.Mode = job.Mode
	if job.Title != "" {
		fig.Title = job.Title
	}
	if job.XLabel != "" {
		fig.XLabel = job.XLabel
	}
	if job.YLabel != "" {
		fig.YLabel = job.YLabel
	}

	if err := fs.EnsureDir(opts.OutputDir); err != nil {
		return Result{}, err
	}

	logrus.Infof("Plotting %d files as %s into %q", len(series), fig.Mode, path)
	if err := fig.Save(path, series...); err != nil {
		return Result{}, err
	}

	return Result{Path: path, Series: series}, nil
}

// Load reads every input. Series are labelled with labels[i] when given, otherwise with the path.
func Load(inputs []string, labels []string, opts dataset.Options, progress io.Writer) ([]dataset.Series, error) {
	if progress == nil {
		progress = io.Discard
	}

	var errs errcollection.ErrorCollection
	series := make([]dataset.Series, 0, len(inputs))
	for i, input := range inputs {
		fmt.Fprintln(progress, input)

		s, err := dataset.Load(input, opts)
		if err != nil {
			logrus.Debugf("%+v", err)
			errs.Add(err)
			continue
		}

		if i < len(labels) && labels[i] != "" {
			s.Label = labels[i]
		}
		series = append(series, s)
	}

	if err := errs.GetErrIfAny(); err != nil {
		return nil, err
	}
	return series, nil
}
