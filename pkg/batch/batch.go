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

// Package batch reads HCL manifests that describe several figures and renders them in order.
//
// A manifest looks like:
//
//	output_dir = "results/cwndScaling"
//
//	figure "cwnd.png" {
//	  mode    = "line"
//	  inputs  = ["cwnd-0.csv", "cwnd-1.csv"]
//	  labels  = ["flow 0", "flow 1"]
//	  title   = "Congestion window"
//	  x_label = "Time (s)"
//	  y_label = "cwnd (bytes)"
//	}
//
// Relative paths are resolved against the directory holding the manifest.
package batch

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/agrimsaharia/ns-3-dev-git/pkg/figure"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/job"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/utils/fs"
)

type hclManifest struct {
	OutputDir string       `hcl:"output_dir,optional"`
	Figures   []*hclFigure `hcl:"figure,block"`
}

type hclFigure struct {
	Name   string   `hcl:"name,label"`
	Mode   string   `hcl:"mode"`
	Inputs []string `hcl:"inputs"`
	Labels []string `hcl:"labels,optional"`
	Title  string   `hcl:"title,optional"`
	XLabel string   `hcl:"x_label,optional"`
	YLabel string   `hcl:"y_label,optional"`
}

// Manifest is a decoded and validated list of figures.
type Manifest struct {
	Path string
	// OutputDir overrides the configured output directory when not empty.
	OutputDir string
	Jobs      []job.Job
}

// Load parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	return decode(path, file, diags)
}

// Parse decodes manifest source. Filename is used in messages and as base for relative paths.
func Parse(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	return decode(filename, file, diags)
}

func decode(path string, file *hcl.File, diags hcl.Diagnostics) (*Manifest, error) {
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "could not parse manifest %q", path)
	}

	var parsed hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "could not decode manifest %q", path)
	}

	if len(parsed.Figures) == 0 {
		return nil, errors.Errorf("manifest %q declares no figures", path)
	}

	base := filepath.Dir(path)
	manifest := &Manifest{
		Path:      path,
		OutputDir: fs.ResolveRelative(base, parsed.OutputDir),
	}

	seen := map[string]bool{}
	for _, f := range parsed.Figures {
		if seen[f.Name] {
			return nil, errors.Errorf("manifest %q: figure %q declared twice", path, f.Name)
		}
		seen[f.Name] = true

		mode, err := figure.ParseMode(f.Mode)
		if err != nil {
			return nil, errors.Wrapf(err, "manifest %q: figure %q", path, f.Name)
		}

		inputs := make([]string, 0, len(f.Inputs))
		for _, input := range f.Inputs {
			inputs = append(inputs, fs.ResolveRelative(base, input))
		}

		j := job.Job{
			Name:   f.Name,
			Mode:   mode,
			Inputs: inputs,
			Labels: f.Labels,
			Title:  f.Title,
			XLabel: f.XLabel,
			YLabel: f.YLabel,
		}
		if err := j.Validate(); err != nil {
			return nil, errors.Wrapf(err, "manifest %q", path)
		}
		manifest.Jobs = append(manifest.Jobs, j)
	}

	return manifest, nil
}

// Run renders every figure of the manifest in declaration order and stops at the first failure.
func Run(manifest *Manifest, opts job.Options) ([]job.Result, error) {
	if manifest.OutputDir != "" {
		opts.OutputDir = manifest.OutputDir
	}

	results := make([]job.Result, 0, len(manifest.Jobs))
	for i, j := range manifest.Jobs {
		logrus.Infof("Figure %d/%d: %q", i+1, len(manifest.Jobs), j.Name)

		result, err := job.Run(j, opts)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
