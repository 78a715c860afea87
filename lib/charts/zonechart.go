package charts

import (
	"fmt"

	"shotcharts-backend/lib/zonestats"
)

// courtPosition is the fixed drawing location of a field-goal zone on
// the half-court diagram. Free throws have no court position and are
// left off the zone chart.
type courtPosition struct {
	x, y, radius float64
}

var courtZones = map[zonestats.Zone]courtPosition{
	zonestats.RestrictedArea: {x: 0, y: 0, radius: 4},
	zonestats.Paint:          {x: 0, y: 0, radius: 8},
	zonestats.MidRange:       {x: 0, y: 0, radius: 16},
	zonestats.LeftCorner3:    {x: -22, y: -8, radius: 3},
	zonestats.RightCorner3:   {x: 22, y: -8, radius: 3},
	zonestats.AboveBreak3:    {x: 0, y: -23, radius: 3},
}

// efficiencyColor buckets a zone percentage into the traditional
// green/yellow/red shot chart coloring.
func efficiencyColor(pct float64) Color {
	switch {
	case pct >= 0.50:
		return "green"
	case pct >= 0.40:
		return "yellow"
	default:
		return "red"
	}
}

// bubbleSize scales marker area by attempt volume, clamped so rare
// zones stay visible and high-volume zones do not swallow the court.
func bubbleSize(attempts int) float64 {
	size := float64(attempts) * 10
	if size < 50 {
		return 50
	}
	if size > 500 {
		return 500
	}
	return size
}

// ComposeZoneChart builds the half-court shot chart for a single
// profile: one bubble per present field-goal zone. Absent zones simply
// do not appear, they are never drawn as 0%.
func ComposeZoneChart(profile *zonestats.PlayerShootingProfile) (*ChartSpec, error) {
	var bubbles []ZoneBubble
	for _, zone := range zonestats.Zones {
		pos, ok := courtZones[zone]
		if !ok {
			continue
		}
		stats, ok := profile.Zones[zone]
		if !ok {
			continue
		}
		pct, ok := stats.Pct()
		if !ok {
			continue
		}

		bubbles = append(bubbles, ZoneBubble{
			Zone:   zone.String(),
			X:      pos.x,
			Y:      pos.y,
			Radius: pos.radius,
			Size:   bubbleSize(stats.Attempts),
			Color:  efficiencyColor(pct),
			Label:  fmt.Sprintf("%.1f%%\n(%d FGA)", pct*100, stats.Attempts),
		})
	}
	if len(bubbles) == 0 {
		return nil, ErrEmptyData
	}

	return &ChartSpec{
		Kind:  KindZoneChart,
		Title: fmt.Sprintf("%s Shot Chart", profile.Name),
		// fixed half-court extents, not data derived
		XRange:  AxisRange{Min: -30, Max: 30},
		YRange:  AxisRange{Min: -30, Max: 10},
		Bubbles: bubbles,
	}, nil
}
