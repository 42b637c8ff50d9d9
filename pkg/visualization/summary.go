package visualization

import (
	"strconv"

	"github.com/agrimsaharia/ns-3-dev-git/pkg/dataset"
)

var summaryHeaders = []string{"file", "points", "x min", "x max", "y min", "y max"}

// SummaryTable prepares one row per series with its size and extents.
// Extents of series without points are left blank.
func SummaryTable(series []dataset.Series) *Table {
	data := make([][]string, 0, len(series))
	for _, s := range series {
		row := []string{s.Label, strconv.Itoa(s.Len()), "", "", "", ""}
		if bounds, ok := s.Bounds(); ok {
			row[2] = formatValue(bounds.XMin)
			row[3] = formatValue(bounds.XMax)
			row[4] = formatValue(bounds.YMin)
			row[5] = formatValue(bounds.YMax)
		}
		data = append(data, row)
	}
	return NewTable(summaryHeaders, data)
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'g', 6, 64)
}
