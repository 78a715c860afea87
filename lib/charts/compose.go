package charts

import (
	"errors"
	"fmt"

	"shotcharts-backend/lib/zonestats"
)

// Multi-player charts are capped for legibility, not for any technical
// reason: past eight series the palette cycles and the legend is soup.
const (
	MinPlayers = 2
	MaxPlayers = 8
)

var (
	ErrTooFewPlayers  = errors.New("too few players")
	ErrTooManyPlayers = errors.New("too many players")
)

// LeagueAverages holds the per-category league FG% used for reference
// lines, as fractions.
var LeagueAverages = map[zonestats.ShotCategory]float64{
	zonestats.ThreePoint: 0.35,
	zonestats.TwoPoint:   0.52,
	zonestats.FreeThrows: 0.78,
}

func checkPlayerCount(n int) error {
	if n < MinPlayers {
		return fmt.Errorf("%w: got %d profiles, need at least %d", ErrTooFewPlayers, n, MinPlayers)
	}
	if n > MaxPlayers {
		return fmt.Errorf("%w: got %d profiles, max %d", ErrTooManyPlayers, n, MaxPlayers)
	}
	return nil
}

// ComposeScatter builds an attempts-vs-percentage scatter chart for one
// shot category across 2 to 8 players. Axis ranges are computed over
// the joint values of every profile so all points share one scale.
// Colors and markers are assigned by input order.
func ComposeScatter(profiles []*zonestats.PlayerShootingProfile, category zonestats.ShotCategory) (*ChartSpec, error) {
	if err := checkPlayerCount(len(profiles)); err != nil {
		return nil, err
	}

	var allX, allY []float64
	series := make([]Series, 0, len(profiles))
	for i, profile := range profiles {
		color, marker := seriesStyle(i)
		s := Series{
			Name:   profile.Name,
			Color:  color,
			Marker: marker,
		}
		for _, zone := range zonestats.CategoryZones(category) {
			stats, ok := profile.Zones[zone]
			if !ok {
				continue
			}
			pct, ok := stats.Pct()
			if !ok {
				continue
			}
			x := float64(stats.Attempts)
			s.Points = append(s.Points, Point{
				X:     x,
				Y:     pct,
				Label: zone.Abbrev(),
			})
			allX = append(allX, x)
			allY = append(allY, pct)
		}
		series = append(series, s)
	}

	xRange, err := ComputeRange(allX, VolumeAxis)
	if err != nil {
		return nil, err
	}
	yRange, err := ComputeRange(allY, EfficiencyAxis)
	if err != nil {
		return nil, err
	}

	spec := &ChartSpec{
		Kind:   KindScatter,
		Title:  fmt.Sprintf("%s Shooting", categoryTitle(category)),
		XLabel: fmt.Sprintf("%s Attempts", categoryTitle(category)),
		YLabel: fmt.Sprintf("%s FG%%", categoryTitle(category)),
		XRange: xRange,
		YRange: yRange,
		Series: series,
	}
	if avg, ok := LeagueAverages[category]; ok {
		spec.RefLine = &RefLine{
			Label: fmt.Sprintf("League Avg (%.0f%%)", avg*100),
			Y:     avg,
		}
	}
	return spec, nil
}

func categoryTitle(c zonestats.ShotCategory) string {
	switch c {
	case zonestats.ThreePoint:
		return "3-Point"
	case zonestats.TwoPoint:
		return "2-Point"
	case zonestats.FreeThrows:
		return "Free Throw"
	}
	return c.String()
}
