package figure

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects how series are drawn.
type Mode int

const (
	// Scatter draws a glyph per point.
	Scatter Mode = iota
	// Line connects consecutive points.
	Line
)

// ParseMode accepts "scatter"/"s" and "line"/"l".
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "scatter", "s":
		return Scatter, nil
	case "line", "l":
		return Line, nil
	}
	return Scatter, errors.Errorf("unknown plot mode %q, use scatter (s) or line (l)", value)
}

func (m Mode) String() string {
	switch m {
	case Scatter:
		return "scatter"
	case Line:
		return "line"
	}
	return "unknown"
}

// LegendPosition places the legend inside the plot area.
type LegendPosition int

const (
	UpperLeft LegendPosition = iota
	UpperRight
	LowerLeft
	LowerRight
	NoLegend
)

var legendPositions = map[string]LegendPosition{
	"upper left":  UpperLeft,
	"upper right": UpperRight,
	"lower left":  LowerLeft,
	"lower right": LowerRight,
	"none":        NoLegend,
}

// ParseLegendPosition accepts "upper left", "upper right", "lower left", "lower right" and "none".
// Dashes and underscores may be used instead of the space.
func ParseLegendPosition(value string) (LegendPosition, error) {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(value)))
	position, ok := legendPositions[normalized]
	if !ok {
		return UpperLeft, errors.Errorf("unknown legend position %q", value)
	}
	return position, nil
}

func (l LegendPosition) top() bool {
	return l == UpperLeft || l == UpperRight
}

func (l LegendPosition) left() bool {
	return l == UpperLeft || l == LowerLeft
}
