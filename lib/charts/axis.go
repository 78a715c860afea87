package charts

import (
	"errors"
	"math"
	"slices"
)

// Axis selects the padding rule for a computed range.
type Axis int

const (
	// VolumeAxis is for attempt counts: always anchored at zero.
	VolumeAxis Axis = iota
	// EfficiencyAxis is for percentages: never negative, with visible
	// headroom below the lowest observed value.
	EfficiencyAxis
)

// ErrEmptyData is returned when a chart would have no data points at
// all. Charts require at least one value per axis.
var ErrEmptyData = errors.New("no data points")

type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

const (
	headroom  = 1.10
	floorroom = 0.90
)

// ComputeRange derives padded axis bounds from the joint values of
// every series on the chart, so every player's data lands inside the
// same visible scale.
//
// Volume axes span [0, max*1.10]. Efficiency axes span
// [max(0, 0.90*min), max*1.10]. A degenerate zero-width result (all
// values zero) falls back to [0, 1] so the chart stays renderable.
func ComputeRange(values []float64, axis Axis) (AxisRange, error) {
	if len(values) == 0 {
		return AxisRange{}, ErrEmptyData
	}

	minValue := slices.Min(values)
	maxValue := slices.Max(values)

	var r AxisRange
	switch axis {
	case VolumeAxis:
		r = AxisRange{Min: 0, Max: maxValue * headroom}
	case EfficiencyAxis:
		r = AxisRange{
			Min: math.Max(0, minValue*floorroom),
			Max: maxValue * headroom,
		}
	}

	if r.Max <= r.Min {
		return AxisRange{Min: 0, Max: 1}, nil
	}
	return r, nil
}
