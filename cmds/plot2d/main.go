package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/agrimsaharia/ns-3-dev-git/pkg/batch"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/conf"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/dataset"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/figure"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/job"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/logger"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/utils/errutil"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/visualization"
)

const help = `Plots two columns of CSV-like result files as a scatter or line chart.

  plot2d scatter a.csv b.csv cwnd.png
  plot2d l --output_dir=results/cwndScaling cwnd-0.csv cwnd-1.csv cwnd
  plot2d stats a.csv b.csv
  plot2d batch figures.hcl

Every flag can also be set with PLOT2D_<FLAG> environment variable, see "plot2d config".`

var (
	scatterCmd  = conf.Command("scatter", "Plot every input as points.").Alias("s")
	scatterArgs = scatterCmd.Arg("files", "Input files followed by figure name.").Required().Strings()

	lineCmd  = conf.Command("line", "Plot every input as a line.").Alias("l")
	lineArgs = lineCmd.Arg("files", "Input files followed by figure name.").Required().Strings()

	statsCmd   = conf.Command("stats", "Print number of points and extents of every input.")
	statsFiles = statsCmd.Arg("files", "Input files.").Required().Strings()

	batchCmd      = conf.Command("batch", "Render every figure declared in an HCL manifest.")
	batchManifest = batchCmd.Arg("manifest", "Path to manifest.").Required().String()

	configCmd = conf.Command("config", "Print current configuration as environment variables.")
)

func main() {
	conf.SetAppName("plot2d")
	conf.SetHelp(help)

	command, err := conf.ParseFlags()
	errutil.Check(err)

	logger.Initialize(conf.LogLevel(), os.Stderr)
	logrus.Debugf("Configuration: %v", conf.GetFlags())

	switch command {
	case scatterCmd.FullCommand():
		errutil.CheckWithContext(plot(figure.Scatter, *scatterArgs), "scatter plot failed")

	case lineCmd.FullCommand():
		errutil.CheckWithContext(plot(figure.Line, *lineArgs), "line plot failed")

	case statsCmd.FullCommand():
		errutil.CheckWithContext(stats(*statsFiles), "stats failed")

	case batchCmd.FullCommand():
		errutil.CheckWithContext(runBatch(*batchManifest), "batch "+*batchManifest)

	case configCmd.FullCommand():
		fmt.Println(conf.DumpConfig())
	}
}

// splitArgs separates input files from trailing figure name.
func splitArgs(args []string) (inputs []string, name string, err error) {
	if len(args) < 2 {
		return nil, "", errors.New("expected at least one input file followed by figure name")
	}
	return args[:len(args)-1], args[len(args)-1], nil
}

// options builds job options from configuration.
func options() (job.Options, error) {
	opts := job.DefaultOptions()
	opts.OutputDir = conf.OutputDir.Value()
	opts.Progress = os.Stdout

	delimiter, err := dataset.ParseDelimiter(conf.Delimiter.Value())
	if err != nil {
		return opts, err
	}
	opts.Dataset = dataset.Options{
		Delimiter: delimiter,
		XColumn:   conf.XColumn.Value(),
		YColumn:   conf.YColumn.Value(),
	}

	legend, err := figure.ParseLegendPosition(conf.Legend.Value())
	if err != nil {
		return opts, err
	}
	width, err := vg.ParseLength(conf.Width.Value())
	if err != nil {
		return opts, errors.Wrapf(err, "invalid width %q", conf.Width.Value())
	}
	height, err := vg.ParseLength(conf.Height.Value())
	if err != nil {
		return opts, errors.Wrapf(err, "invalid height %q", conf.Height.Value())
	}
	if width <= 0 || height <= 0 {
		return opts, errors.Errorf("figure size must be positive, got %s x %s", conf.Width.Value(), conf.Height.Value())
	}

	opts.Figure.Title = conf.Title.Value()
	opts.Figure.XLabel = conf.XLabel.Value()
	opts.Figure.YLabel = conf.YLabel.Value()
	opts.Figure.YTicks = conf.YTicks.Value()
	opts.Figure.Grid = conf.Grid.Value()
	opts.Figure.Legend = legend
	opts.Figure.Width = width
	opts.Figure.Height = height

	return opts, nil
}

func plot(mode figure.Mode, args []string) error {
	inputs, name, err := splitArgs(args)
	if err != nil {
		return err
	}

	opts, err := options()
	if err != nil {
		return err
	}

	result, err := job.Run(job.Job{
		Name:   name,
		Mode:   mode,
		Inputs: inputs,
		Labels: conf.Labels.Value(),
	}, opts)
	if err != nil {
		return err
	}

	logrus.Infof("Figure saved to %q", result.Path)
	return nil
}

func stats(files []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	series, err := job.Load(files, conf.Labels.Value(), opts.Dataset, nil)
	if err != nil {
		return err
	}

	visualization.DrawTable(os.Stdout, visualization.SummaryTable(series))
	return nil
}

func runBatch(path string) error {
	manifest, err := batch.Load(path)
	if err != nil {
		return err
	}

	opts, err := options()
	if err != nil {
		return err
	}

	results, err := batch.Run(manifest, opts)
	paths := make([]string, 0, len(results))
	for _, result := range results {
		paths = append(paths, result.Path)
	}
	visualization.PrintList(os.Stdout, visualization.NewList(paths, "saved: "))
	return err
}
