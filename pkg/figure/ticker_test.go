package figure

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/plot"
)

func values(ticks []plot.Tick) (result []float64) {
	for _, tick := range ticks {
		result = append(result, tick.Value)
	}
	return result
}

func labels(ticks []plot.Tick) (result []string) {
	for _, tick := range ticks {
		result = append(result, tick.Label)
	}
	return result
}

func TestMaxBinsTicker(t *testing.T) {
	Convey("While placing ticks", t, func() {
		ticker := MaxBinsTicker{Bins: 15}

		Convey("Range of hundred is split by tens", func() {
			ticks := ticker.Ticks(0, 100)
			So(values(ticks), ShouldResemble, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
			So(ticks[3].Label, ShouldEqual, "30")
		})

		Convey("Step grows with range and ticks stay inside it", func() {
			ticks := ticker.Ticks(0, 2144)
			So(len(ticks), ShouldEqual, 11)
			So(ticks[0].Value, ShouldEqual, 0)
			So(ticks[10].Value, ShouldEqual, 2000)
		})

		Convey("Fractional steps are labelled with enough decimals", func() {
			ticks := ticker.Ticks(0, 1)
			So(len(ticks), ShouldEqual, 11)
			So(ticks[3].Label, ShouldEqual, "0.3")
			So(ticks[10].Label, ShouldEqual, "1.0")
		})

		Convey("Fewer bins give coarser steps around zero", func() {
			ticks := MaxBinsTicker{Bins: 4}.Ticks(-1, 1)
			So(labels(ticks), ShouldResemble, []string{"-1.0", "-0.5", "0.0", "0.5", "1.0"})
		})

		Convey("Number of intervals never exceeds bins", func() {
			for _, r := range [][2]float64{{0, 7}, {-13, 42}, {0.001, 0.0173}, {1e6, 3.7e6}, {-5, -4.2}} {
				ticks := ticker.Ticks(r[0], r[1])
				So(len(ticks), ShouldBeGreaterThan, 0)
				So(len(ticks)-1, ShouldBeLessThanOrEqualTo, 15)
				for _, tick := range ticks {
					So(tick.Value, ShouldBeBetweenOrEqual, r[0]-1e-9, r[1]+1e-9)
				}
			}
		})

		Convey("Very fine steps fall back to scientific labels", func() {
			ticks := ticker.Ticks(0, 1e-18)
			So(len(ticks), ShouldEqual, 11)
			So(ticks[3].Label, ShouldEqual, "3e-19")
			So(ticks[10].Label, ShouldEqual, "1e-18")

			seen := map[string]bool{}
			for _, label := range labels(ticks) {
				So(seen[label], ShouldBeFalse)
				seen[label] = true
			}
		})

		Convey("Degenerate range gives one tick", func() {
			ticks := ticker.Ticks(5, 5)
			So(values(ticks), ShouldResemble, []float64{5})
			So(ticks[0].Label, ShouldEqual, "5")
		})

		Convey("Reversed range is handled", func() {
			So(values(ticker.Ticks(100, 0)), ShouldResemble, values(ticker.Ticks(0, 100)))
		})

		Convey("Zero bins behave like one", func() {
			ticks := MaxBinsTicker{}.Ticks(0, 10)
			So(len(ticks), ShouldBeBetweenOrEqual, 1, 2)
		})
	})
}

func TestParseMode(t *testing.T) {
	Convey("While parsing mode", t, func() {
		for input, expected := range map[string]Mode{"scatter": Scatter, "s": Scatter, "line": Line, "l": Line, " LINE ": Line} {
			mode, err := ParseMode(input)
			So(err, ShouldBeNil)
			So(mode, ShouldEqual, expected)
		}

		_, err := ParseMode("bar")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `"bar"`)

		So(Scatter.String(), ShouldEqual, "scatter")
		So(Line.String(), ShouldEqual, "line")
	})
}

func TestParseLegendPosition(t *testing.T) {
	Convey("While parsing legend position", t, func() {
		for input, expected := range map[string]LegendPosition{
			"upper left": UpperLeft, "upper-right": UpperRight, "lower_left": LowerLeft,
			"Lower Right": LowerRight, "none": NoLegend,
		} {
			position, err := ParseLegendPosition(input)
			So(err, ShouldBeNil)
			So(position, ShouldEqual, expected)
		}

		_, err := ParseLegendPosition("center")
		So(err, ShouldNotBeNil)

		So(UpperLeft.top(), ShouldBeTrue)
		So(UpperLeft.left(), ShouldBeTrue)
		So(LowerRight.top(), ShouldBeFalse)
		So(LowerRight.left(), ShouldBeFalse)
	})
}
