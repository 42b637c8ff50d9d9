package main

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/agrimsaharia/ns-3-dev-git/pkg/conf"
	"github.com/agrimsaharia/ns-3-dev-git/pkg/figure"
)

func TestSplitArgs(t *testing.T) {
	Convey("While splitting positional arguments", t, func() {
		Convey("Last one is the figure name", func() {
			inputs, name, err := splitArgs([]string{"a.csv", "b.csv", "cwnd.png"})
			So(err, ShouldBeNil)
			So(inputs, ShouldResemble, []string{"a.csv", "b.csv"})
			So(name, ShouldEqual, "cwnd.png")
		})

		Convey("Figure name alone is not enough", func() {
			_, _, err := splitArgs([]string{"cwnd.png"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestOptions(t *testing.T) {
	Convey("While building options from default configuration", t, func() {
		opts, err := options()
		So(err, ShouldBeNil)

		So(opts.OutputDir, ShouldEqual, ".")
		So(opts.Dataset.Delimiter, ShouldEqual, ',')
		So(opts.Dataset.XColumn, ShouldEqual, 0)
		So(opts.Dataset.YColumn, ShouldEqual, 1)
		So(opts.Figure.YTicks, ShouldEqual, figure.DefaultYTicks)
		So(opts.Figure.Grid, ShouldBeTrue)
		So(opts.Figure.Legend, ShouldEqual, figure.UpperLeft)
		So(float64(opts.Figure.Width), ShouldAlmostEqual, float64(figure.DefaultWidth))
		So(float64(opts.Figure.Height), ShouldAlmostEqual, float64(figure.DefaultHeight))
	})
}

func TestParseCommandLine(t *testing.T) {
	Convey("While parsing command line", t, func() {
		Convey("Missing command is an error", func() {
			_, err := conf.Parse([]string{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "command not specified")

			_, err = conf.Parse([]string{"--log=debug"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "command not specified")
		})

		Convey("Empty labels keep inputs at their positions", func() {
			command, err := conf.Parse([]string{"s", "--labels=,ssthresh", "a.csv", "b.csv", "out"})
			So(err, ShouldBeNil)
			So(command, ShouldEqual, scatterCmd.FullCommand())
			So(*scatterArgs, ShouldResemble, []string{"a.csv", "b.csv", "out"})
			So(conf.Labels.Value(), ShouldResemble, []string{"", "ssthresh"})
		})
	})
}
