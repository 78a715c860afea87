// Package charts composes renderer-agnostic chart specifications out of
// player shooting profiles. It computes series, axis ranges, colors and
// reference lines; drawing is left entirely to the consumer of the
// ChartSpec.
package charts

// ChartKind discriminates the layouts a renderer has to support.
type ChartKind string

const (
	KindScatter   ChartKind = "scatter"
	KindZoneChart ChartKind = "zone_chart"
	KindBars      ChartKind = "bars"
)

type Color string

type Marker string

// seriesColors and seriesMarkers are assigned to profiles by input
// order: the first profile always gets blue circles, the second red
// squares, and so on. Reordering the input therefore changes the
// visual assignment. That is the documented contract, callers that
// want stable colors must pass a stable order.
var seriesColors = []Color{
	"blue", "red", "green", "orange", "purple", "brown", "pink", "gray",
}

var seriesMarkers = []Marker{
	"circle", "square", "triangle-up", "diamond",
	"triangle-down", "triangle-left", "triangle-right", "pentagon",
}

func seriesStyle(i int) (Color, Marker) {
	return seriesColors[i%len(seriesColors)], seriesMarkers[i%len(seriesMarkers)]
}

// Point is a single scatter point with its annotation label.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// Series is one player's points on a scatter chart.
type Series struct {
	Name   string  `json:"name"`
	Color  Color   `json:"color"`
	Marker Marker  `json:"marker"`
	Points []Point `json:"points"`
}

// RefLine is a horizontal reference line, e.g. a league average.
type RefLine struct {
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}

// ZoneBubble is one court zone on a shot chart: a circle at fixed court
// coordinates, color bucketed by efficiency, sized by attempt volume.
type ZoneBubble struct {
	Zone   string  `json:"zone"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Size   float64 `json:"size"`
	Color  Color   `json:"color"`
	Label  string  `json:"label"`
}

// BarGroup is one category of grouped bars, one value per player in
// series order.
type BarGroup struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ChartSpec is the complete renderer-agnostic description of a chart:
// series data, axis ranges and labels. It carries no rendering detail.
type ChartSpec struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	XRange AxisRange `json:"x_range"`
	YRange AxisRange `json:"y_range"`

	Series  []Series `json:"series,omitempty"`
	RefLine *RefLine `json:"ref_line,omitempty"`

	Bubbles []ZoneBubble `json:"bubbles,omitempty"`

	BarGroups []BarGroup `json:"bar_groups,omitempty"`
	BarNames  []string   `json:"bar_names,omitempty"`
	BarColors []Color    `json:"bar_colors,omitempty"`
}
