package charts

import (
	"shotcharts-backend/lib/zonestats"
)

// ComposeEfficiencyBars builds the grouped-bar summary of overall, 3PT,
// 2PT and free-throw percentages for 2 to 8 players. Bars share one
// zero-anchored scale and bar colors follow input order, like scatter
// series.
func ComposeEfficiencyBars(profiles []*zonestats.PlayerShootingProfile) (*ChartSpec, error) {
	if err := checkPlayerCount(len(profiles)); err != nil {
		return nil, err
	}

	names := make([]string, len(profiles))
	colors := make([]Color, len(profiles))
	for i, profile := range profiles {
		names[i] = profile.Name
		colors[i], _ = seriesStyle(i)
	}

	groups := []BarGroup{
		{Label: "Total FG%"},
		{Label: "3PT FG%"},
		{Label: "2PT FG%"},
		{Label: "FT%"},
	}

	var all []float64
	for _, profile := range profiles {
		totals := []zonestats.ZoneStats{
			profile.FieldGoalTotals(),
			profile.CategoryTotals(zonestats.ThreePoint),
			profile.CategoryTotals(zonestats.TwoPoint),
			profile.CategoryTotals(zonestats.FreeThrows),
		}
		for i, t := range totals {
			// a category the player never shot from charts as a zero
			// height bar; the underlying zones stay absent in the
			// profile itself
			pct, _ := t.Pct()
			groups[i].Values = append(groups[i].Values, pct)
			all = append(all, pct)
		}
	}

	yRange, err := ComputeRange(all, VolumeAxis)
	if err != nil {
		return nil, err
	}

	return &ChartSpec{
		Kind:      KindBars,
		Title:     "Overall Shooting Comparison",
		YLabel:    "FG%",
		YRange:    yRange,
		BarGroups: groups,
		BarNames:  names,
		BarColors: colors,
	}, nil
}
