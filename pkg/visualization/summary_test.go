package visualization

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/plot/plotter"

	"github.com/agrimsaharia/ns-3-dev-git/pkg/dataset"
)

func TestPrintList(t *testing.T) {
	Convey("While printing list", t, func() {
		buffer := &bytes.Buffer{}
		PrintList(buffer, NewList([]string{"a.csv", "b.csv"}, "input: "))
		So(buffer.String(), ShouldEqual, "input: a.csv\ninput: b.csv\n")

		Convey("Empty list prints nothing", func() {
			buffer.Reset()
			PrintList(buffer, NewList(nil, ""))
			So(buffer.String(), ShouldBeEmpty)
		})
	})
}

func TestSummaryTable(t *testing.T) {
	Convey("While summarizing series", t, func() {
		series := []dataset.Series{
			{Label: "cwnd.csv", Points: plotter.XYs{{X: 0, Y: 536}, {X: 1.5, Y: 2144}}},
			{Label: "empty.csv", Points: plotter.XYs{}},
		}

		table := SummaryTable(series)
		So(table.headers, ShouldResemble, summaryHeaders)
		So(table.data, ShouldResemble, [][]string{
			{"cwnd.csv", "2", "0", "1.5", "536", "2144"},
			{"empty.csv", "0", "", "", "", ""},
		})

		Convey("Drawn table contains headers and rows", func() {
			buffer := &bytes.Buffer{}
			DrawTable(buffer, table)
			So(buffer.String(), ShouldContainSubstring, "FILE")
			So(buffer.String(), ShouldContainSubstring, "cwnd.csv")
			So(buffer.String(), ShouldContainSubstring, "2144")
			So(buffer.String(), ShouldContainSubstring, "empty.csv")
		})
	})
}
