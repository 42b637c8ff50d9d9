package figure

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

const maxDecimals = 15

// Mantissas of acceptable tick steps, in increasing order.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// MaxBinsTicker places major ticks on round numbers so that the axis is split
// into at most Bins intervals.
type MaxBinsTicker struct {
	Bins int
}

// Ticks implements plot.Ticker.
func (t MaxBinsTicker) Ticks(min, max float64) []plot.Tick {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []plot.Tick{{Value: min, Label: strconv.FormatFloat(min, 'g', -1, 64)}}
	}

	step := t.step(min, max)
	first := math.Ceil(min/step - 1e-9)
	last := math.Floor(max/step + 1e-9)

	if last < first {
		return nil
	}

	format, precision := labelFormat(step, min, max)
	ticks := make([]plot.Tick, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		value := i * step
		if i == 0 {
			value = 0
		}
		ticks = append(ticks, plot.Tick{
			Value: value,
			Label: strconv.FormatFloat(value, format, precision, 64),
		})
	}
	return ticks
}

// step returns smallest nice step for which the range, widened to whole steps,
// spans no more than Bins intervals.
func (t MaxBinsTicker) step(min, max float64) float64 {
	bins := t.Bins
	if bins < 1 {
		bins = 1
	}

	raw := (max - min) / float64(bins)
	scale := math.Pow(10, math.Floor(math.Log10(raw)))

	var step float64
	for _, magnitude := range []float64{1, 10, 100} {
		for _, mantissa := range niceSteps {
			step = mantissa * magnitude * scale
			if step < raw*(1-1e-9) {
				continue
			}
			lo := math.Floor(min/step + 1e-9)
			hi := math.Ceil(max/step - 1e-9)
			if hi-lo <= float64(bins) {
				return step
			}
		}
	}
	return step
}

// labelFormat picks fixed notation with just enough decimals for step, or
// scientific notation with enough significant digits when step is too fine.
func labelFormat(step, min, max float64) (byte, int) {
	if decimals, ok := decimalsFor(step); ok {
		return 'f', decimals
	}

	extent := math.Max(math.Abs(min), math.Abs(max))
	digits := int(math.Ceil(math.Log10(extent/step))) + 2
	if digits < 2 {
		digits = 2
	}
	if digits > 17 {
		digits = 17
	}
	return 'g', digits
}

// decimalsFor returns number of fraction digits needed to print multiples of step exactly.
// It returns false when step needs more than maxDecimals digits.
func decimalsFor(step float64) (int, bool) {
	for decimals := 0; decimals <= maxDecimals; decimals++ {
		scaled := step * math.Pow(10, float64(decimals))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*scaled {
			return decimals, true
		}
	}
	return 0, false
}
