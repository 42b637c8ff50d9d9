package conf

// Flags below are shared by every plot2d command. They are grouped in the order
// DumpConfig prints them.
var (
	// OutputDir is where figures are written.
	OutputDir = NewStringFlag("output_dir", "Directory figures are saved to (created when missing)", ".")

	// Width and Height of the figure, with unit (in, cm, mm, pt).
	Width  = NewStringFlag("width", "Figure width with unit, e.g. 6.4in or 16cm", "6.4in")
	Height = NewStringFlag("height", "Figure height with unit, e.g. 4.8in or 12cm", "4.8in")

	// YTicks bounds the number of intervals on the y axis.
	YTicks = NewIntFlag("y_ticks", "Maximum number of tick intervals on the y axis", 15)
	// Grid draws grid lines behind the data.
	Grid = NewBoolFlag("grid", "Draw grid lines", true)
	// Legend places the legend: upper left, upper right, lower left, lower right or none.
	Legend = NewStringFlag("legend", "Legend position: upper left, upper right, lower left, lower right, none", "upper left")

	Title  = NewStringFlag("title", "Figure title", "")
	XLabel = NewStringFlag("x_label", "X axis label", "")
	YLabel = NewStringFlag("y_label", "Y axis label", "")
	// Labels overrides legend entries positionally; inputs without a label use their path.
	Labels = NewPositionalSliceFlag("labels", "Comma separated legend labels, one per input file in order; leave a label empty to keep the path")

	// Delimiter separates fields in input files.
	Delimiter = NewStringFlag("delimiter", "Single character separating fields in input files", ",")
	XColumn   = NewIntFlag("x_column", "Zero based column plotted on the x axis", 0)
	YColumn   = NewIntFlag("y_column", "Zero based column plotted on the y axis", 1)
)
