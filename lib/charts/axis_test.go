package charts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeRangeVolume(t *testing.T) {
	r, err := ComputeRange([]float64{10, 20}, VolumeAxis)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Min)
	require.InDelta(t, 22.0, r.Max, 1e-9)

	// volume axes are zero anchored no matter how large the minimum is
	r, err = ComputeRange([]float64{300, 450}, VolumeAxis)
	require.NoError(t, err)
	require.Equal(t, 0.0, r.Min)
	require.InDelta(t, 495.0, r.Max, 1e-9)
}

func TestComputeRangeEfficiency(t *testing.T) {
	r, err := ComputeRange([]float64{0.45, 0.50}, EfficiencyAxis)
	require.NoError(t, err)
	require.InDelta(t, 0.405, r.Min, 1e-9)
	require.InDelta(t, 0.55, r.Max, 1e-9)
}

func TestComputeRangeEmpty(t *testing.T) {
	_, err := ComputeRange(nil, VolumeAxis)
	require.True(t, errors.Is(err, ErrEmptyData))

	_, err = ComputeRange([]float64{}, EfficiencyAxis)
	require.True(t, errors.Is(err, ErrEmptyData))
}

func TestComputeRangeDegenerate(t *testing.T) {
	// all-zero input must not produce an unrenderable zero-width range
	r, err := ComputeRange([]float64{0}, EfficiencyAxis)
	require.NoError(t, err)
	require.Equal(t, AxisRange{Min: 0, Max: 1}, r)

	r, err = ComputeRange([]float64{0, 0, 0}, VolumeAxis)
	require.NoError(t, err)
	require.Equal(t, AxisRange{Min: 0, Max: 1}, r)

	// a single nonzero value already has width from the padding rules
	r, err = ComputeRange([]float64{0.5}, EfficiencyAxis)
	require.NoError(t, err)
	require.InDelta(t, 0.45, r.Min, 1e-9)
	require.InDelta(t, 0.55, r.Max, 1e-9)
	require.Greater(t, r.Max, r.Min)
}

func TestComputeRangeContainsValues(t *testing.T) {
	sequences := [][]float64{
		{0.1},
		{0.45, 0.50},
		{0.0, 0.9, 0.33},
		{1, 2, 3, 4, 5},
	}
	for _, values := range sequences {
		for _, axis := range []Axis{VolumeAxis, EfficiencyAxis} {
			r, err := ComputeRange(values, axis)
			require.NoError(t, err)
			for _, v := range values {
				require.LessOrEqual(t, r.Min, v)
				require.GreaterOrEqual(t, r.Max, v)
			}
			require.GreaterOrEqual(t, r.Min, 0.0)
		}
	}
}
